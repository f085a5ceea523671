package templates

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/urlist/internal/services/web/routepath"
)

const (
	appErrorPageTitleKey       = "core.error.title"
	appErrorHeadingNotFoundKey = "core.error.not_found.title"
	appErrorHeadingServerKey   = "core.error.server.title"
	appErrorMessageNotFoundKey = "core.error.not_found.body"
	appErrorMessageServerKey   = "core.error.server.body"
	appErrorStartOverKey       = "core.action.start_over"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, appErrorPageTitleKey, normalizeAppErrorStatus(statusCode))
}

// AppErrorState renders the error card in place of the board. An empty
// detail falls back to the generic copy for the status.
func AppErrorState(statusCode int, detail string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		status := normalizeAppErrorStatus(statusCode)
		message := strings.TrimSpace(detail)
		if message == "" {
			message = appErrorMessage(status, loc)
		}
		h := &htmlWriter{w: w}
		h.raw("<section")
		h.attr("id", BoardID)
		h.attr("class", "board error")
		h.raw("><h2>")
		h.text(appErrorHeading(status, loc))
		h.raw("</h2><p>")
		h.text(message)
		h.raw(`</p><a class="button"`)
		h.attr("href", routepath.Root)
		h.raw(` hx-boost="false">`)
		h.text(T(loc, appErrorStartOverKey))
		h.raw("</a></section>")
		return h.err
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
