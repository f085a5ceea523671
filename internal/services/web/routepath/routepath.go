// Package routepath stores canonical HTTP paths for the task list web service.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root         = "/"
	Health       = "/healthz"
	StaticPrefix = "/static/"

	SessionsPrefix = "/sessions/"

	SessionPattern      = SessionsPrefix + "{session}"
	TaskCreatePattern   = SessionsPrefix + "{session}/tasks"
	ComposePattern      = SessionsPrefix + "{session}/compose"
	TaskTogglePattern   = SessionsPrefix + "{session}/tasks/{id}/toggle"
	TaskDeletePattern   = SessionsPrefix + "{session}/tasks/{id}/delete"
	TaskEditPattern     = SessionsPrefix + "{session}/tasks/{id}/edit"
	EditDraftPattern    = SessionsPrefix + "{session}/edit/draft"
	EditCommitPattern   = SessionsPrefix + "{session}/edit/commit"
	EditCancelPattern   = SessionsPrefix + "{session}/edit/cancel"
	FilterPattern       = SessionsPrefix + "{session}/filter"
	SessionClosePattern = SessionsPrefix + "{session}/close"

	// PageParam carries the render generation on the close route.
	PageParam = "page"
)

// Session returns the board route for one page-load session.
func Session(sessionID string) string {
	return SessionsPrefix + escapeSegment(sessionID)
}

// TaskCreate returns the route that adds a task.
func TaskCreate(sessionID string) string {
	return Session(sessionID) + "/tasks"
}

// Compose returns the route that stores the compose draft.
func Compose(sessionID string) string {
	return Session(sessionID) + "/compose"
}

// TaskToggle returns the route that flips a task's completion.
func TaskToggle(sessionID string, taskID int) string {
	return task(sessionID, taskID) + "/toggle"
}

// TaskDelete returns the route that removes a task.
func TaskDelete(sessionID string, taskID int) string {
	return task(sessionID, taskID) + "/delete"
}

// TaskEdit returns the route that starts editing a task.
func TaskEdit(sessionID string, taskID int) string {
	return task(sessionID, taskID) + "/edit"
}

// EditDraft returns the route that stores the edit draft.
func EditDraft(sessionID string) string {
	return Session(sessionID) + "/edit/draft"
}

// EditCommit returns the route that saves the edit draft.
func EditCommit(sessionID string) string {
	return Session(sessionID) + "/edit/commit"
}

// EditCancel returns the route that leaves edit mode.
func EditCancel(sessionID string) string {
	return Session(sessionID) + "/edit/cancel"
}

// Filter returns the route that changes the visible filter.
func Filter(sessionID string) string {
	return Session(sessionID) + "/filter"
}

// SessionClose returns the route the page calls when it unloads. A
// positive page names the render generation of the unloading document.
func SessionClose(sessionID string, page uint64) string {
	path := Session(sessionID) + "/close"
	if page == 0 {
		return path
	}
	return path + "?" + PageParam + "=" + strconv.FormatUint(page, 10)
}

// Static returns the path of an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

func task(sessionID string, taskID int) string {
	return Session(sessionID) + "/tasks/" + strconv.Itoa(taskID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
