package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/urlist/internal/services/web/routepath"
	"github.com/louisbranch/urlist/internal/tasklist"
)

// BoardID is the element id htmx swaps on every intent.
const BoardID = "board"

const boardTarget = "#" + BoardID

// Board renders the compose form, filter and visible tasks of one session.
func Board(page PageContext, snap tasklist.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw("<section")
		h.attr("id", BoardID)
		h.attr("class", "board")
		h.attr("data-session", page.SessionID)
		h.raw(">")
		writeComposeForm(h, page, snap)
		writeFilterForm(h, page, snap.Filter)
		if snap.Empty() {
			writeEmptyState(h, page.Loc)
		} else {
			h.raw(`<ul class="tasks">`)
			for _, task := range snap.Visible {
				if snap.Edit.Editing(task.ID) {
					writeEditRow(h, page, task, snap.Edit.Draft)
					continue
				}
				writeTaskRow(h, page, task)
			}
			h.raw("</ul>")
		}
		h.raw(`<p class="summary">`)
		h.text(T(page.Loc, summaryKey, snap.ActiveCount(), snap.CompletedCount()))
		h.raw("</p></section>")
		return h.err
	})
}

// writeIntentForm opens a form that posts to action and swaps the board.
func writeIntentForm(h *htmlWriter, class, action, trigger string) {
	h.raw("<form")
	h.attr("class", class)
	h.attr("method", "post")
	h.attr("action", action)
	h.attr("hx-post", action)
	h.attr("hx-target", boardTarget)
	h.attr("hx-swap", "outerHTML")
	if trigger != "" {
		h.attr("hx-trigger", trigger)
	}
	h.raw(">")
}

// writeDraftForm opens a form whose text input also stores its draft as the
// user types. A submit replaces a pending draft post, and a draft post never
// starts while the submit is in flight.
func writeDraftForm(h *htmlWriter, class, action string) {
	h.raw("<form")
	h.attr("class", class)
	h.attr("method", "post")
	h.attr("action", action)
	h.attr("hx-post", action)
	h.attr("hx-target", boardTarget)
	h.attr("hx-swap", "outerHTML")
	h.attr("hx-sync", "this:replace")
	h.raw(">")
}

func writeDraftInputAttrs(h *htmlWriter, draftAction string) {
	h.attr("hx-post", draftAction)
	h.attr("hx-trigger", "input changed delay:300ms")
	h.attr("hx-swap", "none")
	h.attr("hx-sync", "closest form:abort")
}

func writeComposeForm(h *htmlWriter, page PageContext, snap tasklist.Snapshot) {
	writeDraftForm(h, "compose", routepath.TaskCreate(page.SessionID))
	h.raw(`<input type="text" name="text" autocomplete="off" autofocus`)
	h.attr("value", snap.ComposeText)
	h.attr("placeholder", T(page.Loc, composePlaceholderKey))
	h.attr("aria-label", T(page.Loc, composePlaceholderKey))
	writeDraftInputAttrs(h, routepath.Compose(page.SessionID))
	h.raw(`><button type="submit">`)
	h.text(T(page.Loc, composeSubmitKey))
	h.raw("</button></form>")
}

func writeFilterForm(h *htmlWriter, page PageContext, active tasklist.Filter) {
	writeIntentForm(h, "filter", routepath.Filter(page.SessionID), "change")
	h.raw(`<label for="filter">`)
	h.text(T(page.Loc, filterLabelKey))
	h.raw(`</label><select id="filter" name="filter">`)
	for _, filter := range tasklist.Filters() {
		h.raw("<option")
		h.attr("value", string(filter))
		h.flag("selected", filter == active)
		h.raw(">")
		h.text(T(page.Loc, filterOptionKeyPrefix+string(filter)))
		h.raw("</option>")
	}
	h.raw(`</select><noscript><button type="submit">`)
	h.text(T(page.Loc, filterApplyKey))
	h.raw("</button></noscript></form>")
}

func writeTaskRow(h *htmlWriter, page PageContext, task tasklist.Task) {
	completed := ""
	if task.Completed {
		completed = "completed"
	}
	h.raw("<li")
	h.attr("id", taskElementID(task.ID))
	h.attr("class", classes("task", completed))
	h.raw(">")
	writeToggleForm(h, page, task)
	h.raw(`<span class="task-text">`)
	h.text(task.Text)
	h.raw("</span>")
	writeEditStartForm(h, page, task)
	writeDeleteForm(h, page, task)
	h.raw("</li>")
}

// writeEditRow swaps the task text for the draft input but keeps the row's
// checkbox and its edit and delete buttons.
func writeEditRow(h *htmlWriter, page PageContext, task tasklist.Task, draft string) {
	completed := ""
	if task.Completed {
		completed = "completed"
	}
	h.raw("<li")
	h.attr("id", taskElementID(task.ID))
	h.attr("class", classes("task", "editing", completed))
	h.raw(">")
	writeToggleForm(h, page, task)

	writeDraftForm(h, "task-edit", routepath.EditCommit(page.SessionID))
	h.raw(`<input type="text" name="draft" autocomplete="off" autofocus`)
	h.attr("value", draft)
	h.attr("aria-label", T(page.Loc, rowDraftLabelKey))
	writeDraftInputAttrs(h, routepath.EditDraft(page.SessionID))
	h.attr("data-edit-cancel", routepath.EditCancel(page.SessionID))
	h.raw(`><button type="submit" class="save">`)
	h.text(T(page.Loc, rowSaveKey))
	h.raw("</button></form>")

	writeIntentForm(h, "task-edit-cancel", routepath.EditCancel(page.SessionID), "")
	h.raw(`<button type="submit" class="cancel">`)
	h.text(T(page.Loc, rowCancelKey))
	h.raw("</button></form>")

	writeEditStartForm(h, page, task)
	writeDeleteForm(h, page, task)
	h.raw("</li>")
}

func writeToggleForm(h *htmlWriter, page PageContext, task tasklist.Task) {
	writeIntentForm(h, "task-toggle", routepath.TaskToggle(page.SessionID, task.ID), "change")
	h.raw(`<input type="checkbox" name="completed"`)
	h.attr("aria-label", T(page.Loc, rowToggleKey))
	h.flag("checked", task.Completed)
	h.raw(`><noscript><button type="submit">`)
	h.text(T(page.Loc, rowToggleKey))
	h.raw("</button></noscript></form>")
}

func writeEditStartForm(h *htmlWriter, page PageContext, task tasklist.Task) {
	writeIntentForm(h, "task-edit-start", routepath.TaskEdit(page.SessionID, task.ID), "")
	h.raw(`<input type="hidden" name="text"`)
	h.attr("value", task.Text)
	h.raw(`><button type="submit" class="icon edit"`)
	h.attr("aria-label", T(page.Loc, rowEditKey))
	h.attr("title", T(page.Loc, rowEditKey))
	h.raw(">&#9998;</button></form>")
}

func writeDeleteForm(h *htmlWriter, page PageContext, task tasklist.Task) {
	writeIntentForm(h, "task-delete", routepath.TaskDelete(page.SessionID, task.ID), "")
	h.raw(`<button type="submit" class="icon delete"`)
	h.attr("aria-label", T(page.Loc, rowDeleteKey))
	h.attr("title", T(page.Loc, rowDeleteKey))
	h.raw(">&#128465;</button></form>")
}

func writeEmptyState(h *htmlWriter, loc Localizer) {
	h.raw(`<div class="empty"><p class="empty-title">`)
	h.text(T(loc, emptyTitleKey))
	h.raw(`</p><p class="empty-body">`)
	h.text(T(loc, emptyBodyKey))
	h.raw("</p></div>")
}

func taskElementID(id int) string {
	return "task-" + strconv.Itoa(id)
}
