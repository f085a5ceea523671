// Package i18n resolves supported languages and localized printers.
package i18n

import (
	"strings"

	"github.com/louisbranch/urlist/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	supportedTags = loadSupportedTags()
	matcher       = language.NewMatcher(supportedTags)
)

// loadSupportedTags puts the base locale first so the matcher falls back to it.
func loadSupportedTags() []language.Tag {
	bundle := catalog.Default()
	tags := []language.Tag{language.MustParse(catalog.BaseLocale)}
	for _, locale := range bundle.Locales() {
		if locale == catalog.BaseLocale {
			continue
		}
		tags = append(tags, language.MustParse(locale))
	}
	return tags
}

// SupportedTags returns the catalog languages, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses raw and maps it to a supported tag. It reports false for
// empty, malformed or unsupported input.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supportedTag(matched), true
}

// MatchTags picks the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	matched, _, _ := matcher.Match(tags...)
	return supportedTag(matched)
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// supportedTag strips the -u-rg extension the matcher may attach.
func supportedTag(matched language.Tag) language.Tag {
	base, _ := matched.Base()
	region, _ := matched.Region()
	for _, tag := range supportedTags {
		tb, _ := tag.Base()
		tr, _ := tag.Region()
		if tb == base && tr == region {
			return tag
		}
	}
	for _, tag := range supportedTags {
		if tb, _ := tag.Base(); tb == base {
			return tag
		}
	}
	return DefaultTag()
}
