package catalog

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		if got := len(bundle.NamespaceMessages(locale, "tasks")); got == 0 {
			t.Fatalf("expected %s tasks namespace messages", locale)
		}
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.locales[BaseLocale].messages
	for _, locale := range bundle.Locales() {
		messages := bundle.locales[locale].messages
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
		if len(messages) != len(base) {
			t.Fatalf("locale %s has %d keys, base has %d", locale, len(messages), len(base))
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/tasks.yaml": {Data: []byte("locale: en-US\nnamespace: tasks\nmessages:\n  tasks.only_en: \"hello\"\n")},
		"locales/pt-BR/tasks.yaml": {Data: []byte("locale: pt-BR\nnamespace: tasks\nmessages:\n  tasks.other: \"oi\"\n")},
	})
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}
	got, ok := bundle.Message("pt-BR", "tasks.only_en")
	if !ok || got != "hello" {
		t.Fatalf("Message() = %q, %t, want %q, true", got, ok, "hello")
	}
	if _, ok := bundle.Message("pt-BR", "tasks.missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "no files",
			fs:   fstest.MapFS{},
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"locales/en-US/tasks.yaml": {Data: []byte("locale: pt-BR\nnamespace: tasks\nmessages:\n  tasks.a: \"a\"\n")},
			},
		},
		{
			name: "namespace mismatch",
			fs: fstest.MapFS{
				"locales/en-US/tasks.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.a: \"a\"\n")},
			},
		},
		{
			name: "key outside namespace",
			fs: fstest.MapFS{
				"locales/en-US/tasks.yaml": {Data: []byte("locale: en-US\nnamespace: tasks\nmessages:\n  core.a: \"a\"\n")},
			},
		},
		{
			name: "missing base locale",
			fs: fstest.MapFS{
				"locales/pt-BR/tasks.yaml": {Data: []byte("locale: pt-BR\nnamespace: tasks\nmessages:\n  tasks.a: \"a\"\n")},
			},
		},
		{
			name: "malformed yaml",
			fs: fstest.MapFS{
				"locales/en-US/tasks.yaml": {Data: []byte("locale: [unterminated\n")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFS(tt.fs); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
