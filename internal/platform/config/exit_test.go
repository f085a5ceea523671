package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var out bytes.Buffer
	code := -1
	prevWriter, prevExit := exitWriter, exit
	exitWriter = &out
	exit = func(c int) { code = c }
	t.Cleanup(func() { exitWriter, exit = prevWriter, prevExit })

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "fatal: something broke") {
		t.Fatalf("expected output to contain %q, got %q", "fatal: something broke", out.String())
	}
}
