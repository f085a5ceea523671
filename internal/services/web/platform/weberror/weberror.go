// Package weberror renders shared error responses for web handlers.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/urlist/internal/services/web/platform/errors"
	"github.com/louisbranch/urlist/internal/services/web/platform/httpx"
	"github.com/louisbranch/urlist/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/urlist/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error card UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the localized error card, wrapped in the page shell
// for full navigations.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, detail string, page webtemplates.PageContext) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page.Title = webtemplates.AppErrorPageTitle(statusCode, page.Loc)
	page.SessionID = ""
	page.Page = 0
	err := pagerender.Write(w, r, pagerender.Page{
		Context:    page,
		StatusCode: statusCode,
		Fragment:   webtemplates.AppErrorState(statusCode, detail, page.Loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteError maps err to a status and writes either the error card or a
// plain-text response.
func WriteError(w http.ResponseWriter, r *http.Request, err error, page webtemplates.PageContext) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web error method=%s path=%s request_id=%s err=%v", requestMethod(r), requestPath(r), httpx.RequestIDFrom(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		detail := ""
		if apperrors.LocalizationKey(err) != "" {
			detail = PublicMessage(page.Loc, err)
		}
		WriteAppError(w, r, statusCode, detail, page)
		return
	}
	http.Error(w, PublicMessage(page.Loc, err), statusCode)
}

func requestMethod(r *http.Request) string {
	if r == nil {
		return "-"
	}
	return r.Method
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
