package templates

import (
	platformi18n "github.com/louisbranch/urlist/internal/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var defaultLocalizer Localizer = platformi18n.Printer(platformi18n.DefaultTag())

// T translates key, rendering in the default language when loc is nil.
// Unknown keys come back as the key itself.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		loc = defaultLocalizer
	}
	return loc.Sprintf(key, args...)
}
