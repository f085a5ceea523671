// Package static embeds the stylesheet and page behavior script.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed app.css app.js
var FS embed.FS
