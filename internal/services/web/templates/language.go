package templates

import (
	"net/url"
	"strings"

	platformi18n "github.com/louisbranch/urlist/internal/platform/i18n"
	webi18n "github.com/louisbranch/urlist/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	active := normalizeTag(page.Lang)
	tags := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(page.Loc, tag),
			URL:    LanguageURL(page, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = "/"
	}
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(webi18n.LangParam, tag)
	return path + "?" + values.Encode()
}

func languageLabel(loc Localizer, tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "en" {
		return T(loc, "core.lang.en")
	}
	return T(loc, "core.lang."+strings.ToLower(strings.ReplaceAll(tag.String(), "-", "_")))
}

// normalizeTag coerces unknown tags to the default supported language.
func normalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}
