// Package pagerender centralizes page rendering for full-page and HTMX flows.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/urlist/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/urlist/internal/services/web/templates"
)

// Page describes one response: the fragment HTMX swaps, and the shell a
// full navigation wraps around it.
type Page struct {
	Context    webtemplates.PageContext
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Write renders page into a buffer first so a render failure never leaves a
// half-written response.
func Write(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := webtemplates.Layout(page.Context)
		if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
