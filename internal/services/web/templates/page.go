// Package templates renders the task list page as templ components.
package templates

import "strings"

const defaultHTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang          string
	Loc           Localizer
	Title         string
	SessionID     string
	// Page is the render generation of a full page; zero for fragments.
	Page          uint64
	CurrentPath   string
	CurrentQuery  string
	HTMXScriptURL string
}

func (p PageContext) htmxScriptURL() string {
	if url := strings.TrimSpace(p.HTMXScriptURL); url != "" {
		return url
	}
	return defaultHTMXScriptURL
}

func (p PageContext) lang() string {
	if lang := strings.TrimSpace(p.Lang); lang != "" {
		return lang
	}
	return "en-US"
}
