// Package branding holds product naming shared by templates and telemetry.
package branding

// AppName is the product name shown in page titles and headings.
const AppName = "UR List"

// PageTitle composes a document title with the product suffix.
func PageTitle(title string) string {
	if title == "" || title == AppName {
		return AppName
	}
	return title + " | " + AppName
}
