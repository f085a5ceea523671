package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/urlist/internal/platform/branding"
	"github.com/louisbranch/urlist/internal/services/web/routepath"
)

// Layout renders the document shell around its children.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		h := &htmlWriter{w: w}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", page.lang())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(branding.PageTitle(page.Title))
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", routepath.Static("app.css"))
		h.raw("><script defer")
		h.attr("src", page.htmxScriptURL())
		h.raw("></script><script defer")
		h.attr("src", routepath.Static("app.js"))
		h.raw("></script></head><body")
		if page.SessionID != "" {
			h.attr("data-session-close", routepath.SessionClose(page.SessionID, page.Page))
		}
		h.raw(`><main class="app"><header class="app-header"><h1>`)
		h.text(T(page.Loc, appNameKey))
		h.raw(`</h1><nav class="app-languages">`)
		for _, option := range LanguageOptions(page) {
			h.raw("<a")
			h.attr("href", option.URL)
			h.attr("hreflang", option.Tag)
			if option.Active {
				h.raw(` class="active" aria-current="true"`)
			}
			h.raw(">")
			h.text(option.Label)
			h.raw("</a>")
		}
		h.raw("</nav></header>")
		if h.err != nil {
			return h.err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		h.raw("</main></body></html>")
		return h.err
	})
}
