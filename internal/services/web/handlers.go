package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/urlist/internal/platform/requestctx"
	apperrors "github.com/louisbranch/urlist/internal/services/web/platform/errors"
	"github.com/louisbranch/urlist/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/urlist/internal/services/web/platform/i18n"
	"github.com/louisbranch/urlist/internal/services/web/platform/pagerender"
	"github.com/louisbranch/urlist/internal/services/web/platform/weberror"
	"github.com/louisbranch/urlist/internal/services/web/routepath"
	"github.com/louisbranch/urlist/internal/services/web/session"
	webstatic "github.com/louisbranch/urlist/internal/services/web/static"
	webtemplates "github.com/louisbranch/urlist/internal/services/web/templates"
	"github.com/louisbranch/urlist/internal/tasklist"
)

const (
	errKeySessionGone = "core.error.session_gone"
	errKeyInvalidTask = "core.error.invalid_task"
	errKeyForbidden   = "core.error.forbidden"
)

type handler struct {
	sessions      *session.Registry
	htmxScriptURL string
}

func (h *handler) register(mux *http.ServeMux) {
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)

	mux.HandleFunc("GET /{$}", h.handleOpen)
	mux.HandleFunc("GET "+routepath.SessionPattern, h.handleBoard)
	mux.HandleFunc("POST "+routepath.TaskCreatePattern, h.handleCreate)
	mux.HandleFunc("POST "+routepath.ComposePattern, h.handleCompose)
	mux.HandleFunc("POST "+routepath.TaskTogglePattern, h.handleToggle)
	mux.HandleFunc("POST "+routepath.TaskDeletePattern, h.handleDelete)
	mux.HandleFunc("POST "+routepath.TaskEditPattern, h.handleBeginEdit)
	mux.HandleFunc("POST "+routepath.EditDraftPattern, h.handleEditDraft)
	mux.HandleFunc("POST "+routepath.EditCommitPattern, h.handleCommitEdit)
	mux.HandleFunc("POST "+routepath.EditCancelPattern, h.handleCancelEdit)
	mux.HandleFunc("POST "+routepath.FilterPattern, h.handleFilter)
	mux.HandleFunc("POST "+routepath.SessionClosePattern, h.handleClose)

	mux.HandleFunc("/", h.handleNotFound)
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// handleOpen starts a fresh list for a new page load.
func (h *handler) handleOpen(w http.ResponseWriter, r *http.Request) {
	sessionID, snap, err := h.sessions.Open(r.Context())
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "", err))
		return
	}
	requestctx.SetSessionID(r.Context(), sessionID)
	h.writeBoard(w, r, sessionID, snap)
}

func (h *handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r)
}

func (h *handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	text := r.PostFormValue("text")
	h.dispatch(w, r, tasklist.SetComposeText{Text: text}, tasklist.Create{Text: text})
}

func (h *handler) handleCompose(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	h.dispatch(w, r, tasklist.SetComposeText{Text: r.PostFormValue("text")})
}

func (h *handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, tasklist.Toggle{ID: taskID})
}

func (h *handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.taskID(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, tasklist.Delete{ID: taskID})
}

// handleBeginEdit seeds the draft from the form, or from the stored text
// when the form omits it.
func (h *handler) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.taskID(w, r)
	if !ok || !h.parseForm(w, r) {
		return
	}
	text, present := formValue(r, "text")
	if !present {
		snap, err := h.sessions.Snapshot(r.Context(), r.PathValue("session"))
		if err != nil {
			h.writeError(w, r, sessionError(err))
			return
		}
		for _, task := range snap.Tasks {
			if task.ID == taskID {
				text = task.Text
				break
			}
		}
	}
	h.dispatch(w, r, tasklist.BeginEdit{ID: taskID, Text: text})
}

func (h *handler) handleEditDraft(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	h.dispatch(w, r, tasklist.SetEditDraft{Text: r.PostFormValue("draft")})
}

func (h *handler) handleCommitEdit(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	intents := []tasklist.Intent{}
	if draft, ok := formValue(r, "draft"); ok {
		intents = append(intents, tasklist.SetEditDraft{Text: draft})
	}
	intents = append(intents, tasklist.CommitEdit{})
	h.dispatch(w, r, intents...)
}

func (h *handler) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, tasklist.CancelEdit{})
}

// handleFilter ignores unknown filter values and re-renders the board.
func (h *handler) handleFilter(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	filter, ok := tasklist.ParseFilter(r.PostFormValue("filter"))
	if !ok {
		h.dispatch(w, r)
		return
	}
	h.dispatch(w, r, tasklist.SetFilter{Filter: filter})
}

// handleClose answers the unload beacon. A beacon naming an older page
// generation leaves the session to the page that replaced it. Closing an
// unknown session is not an error since the page is already gone.
func (h *handler) handleClose(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session")
	requestctx.SetSessionID(r.Context(), sessionID)
	raw := strings.TrimSpace(r.URL.Query().Get(routepath.PageParam))
	if raw == "" {
		h.sessions.Close(sessionID)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	page, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err))
		return
	}
	h.sessions.ClosePage(sessionID, page)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.E(apperrors.KindNotFound, "route not found"))
}

func (h *handler) handleCrossOrigin(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperrors.EK(apperrors.KindForbidden, errKeyForbidden, "cross-origin mutation"))
}

func (h *handler) dispatch(w http.ResponseWriter, r *http.Request, intents ...tasklist.Intent) {
	sessionID := r.PathValue("session")
	requestctx.SetSessionID(r.Context(), sessionID)
	snap, err := h.sessions.Dispatch(r.Context(), sessionID, intents...)
	if err != nil {
		h.writeError(w, r, sessionError(err))
		return
	}
	h.writeBoard(w, r, sessionID, snap)
}

func (h *handler) writeBoard(w http.ResponseWriter, r *http.Request, sessionID string, snap tasklist.Snapshot) {
	page := h.pageContext(w, r, sessionID)
	if !httpx.IsHTMXRequest(r) {
		generation, err := h.sessions.NewPage(sessionID)
		if err != nil {
			h.writeError(w, r, sessionError(err))
			return
		}
		page.Page = generation
	}
	w.Header().Set("Cache-Control", "no-store")
	err := pagerender.Write(w, r, pagerender.Page{
		Context:  page,
		Fragment: webtemplates.Board(page, snap),
	})
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindUnknown, "", err))
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, err, h.pageContext(w, r, ""))
}

func (h *handler) pageContext(w http.ResponseWriter, r *http.Request, sessionID string) webtemplates.PageContext {
	loc, tag := webi18n.ResolveLocalizer(w, r)
	page := webtemplates.PageContext{
		Lang:          tag.String(),
		Loc:           loc,
		SessionID:     sessionID,
		HTMXScriptURL: h.htmxScriptURL,
	}
	if sessionID != "" {
		page.CurrentPath = routepath.Session(sessionID)
	} else if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
	}
	if r != nil && r.Method == http.MethodGet && r.URL != nil {
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

func (h *handler) taskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	taskID, err := strconv.Atoi(strings.TrimSpace(r.PathValue("id")))
	if err != nil || taskID <= 0 {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, errKeyInvalidTask, "invalid task id"))
		return 0, false
	}
	return taskID, true
}

func (h *handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err))
		return false
	}
	return true
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func sessionError(err error) error {
	if errors.Is(err, session.ErrNotFound) {
		return apperrors.Wrap(apperrors.KindNotFound, errKeySessionGone, err)
	}
	return apperrors.Wrap(apperrors.KindUnknown, "", err)
}
