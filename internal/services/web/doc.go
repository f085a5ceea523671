// Package web serves the task list page.
//
// Every page load opens its own list in the session registry. The page then
// posts one intent per user action and htmx swaps the re-rendered board in
// place, so the server holds the only copy of the list state.
package web
