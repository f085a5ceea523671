package tasklist

// Intent is a user action addressed to a Store. Each concrete intent maps to
// the Store operation of the same name.
type Intent interface {
	// Name identifies the intent in logs and traces.
	Name() string
	apply(*Store)
}

// Create adds a task.
type Create struct{ Text string }

// Toggle flips a task's completion flag.
type Toggle struct{ ID int }

// Delete removes a task.
type Delete struct{ ID int }

// BeginEdit enters edit mode for a task.
type BeginEdit struct {
	ID   int
	Text string
}

// CommitEdit applies the edit draft.
type CommitEdit struct{}

// CancelEdit discards the edit draft.
type CancelEdit struct{}

// SetFilter changes the visible subset.
type SetFilter struct{ Filter Filter }

// SetComposeText updates the draft for the next task.
type SetComposeText struct{ Text string }

// SetEditDraft updates the edit draft.
type SetEditDraft struct{ Text string }

func (Create) Name() string         { return "create" }
func (Toggle) Name() string         { return "toggle_complete" }
func (Delete) Name() string         { return "delete" }
func (BeginEdit) Name() string      { return "begin_edit" }
func (CommitEdit) Name() string     { return "commit_edit" }
func (CancelEdit) Name() string     { return "cancel_edit" }
func (SetFilter) Name() string      { return "set_filter" }
func (SetComposeText) Name() string { return "set_compose_text" }
func (SetEditDraft) Name() string   { return "set_edit_draft" }

func (i Create) apply(s *Store)         { s.Create(i.Text) }
func (i Toggle) apply(s *Store)         { s.ToggleComplete(i.ID) }
func (i Delete) apply(s *Store)         { s.Delete(i.ID) }
func (i BeginEdit) apply(s *Store)      { s.BeginEdit(i.ID, i.Text) }
func (CommitEdit) apply(s *Store)       { s.CommitEdit() }
func (CancelEdit) apply(s *Store)       { s.CancelEdit() }
func (i SetFilter) apply(s *Store)      { s.SetFilter(i.Filter) }
func (i SetComposeText) apply(s *Store) { s.SetComposeText(i.Text) }
func (i SetEditDraft) apply(s *Store)   { s.SetEditDraft(i.Text) }

// Dispatch applies each intent in order. Nil intents are skipped.
func (s *Store) Dispatch(intents ...Intent) {
	for _, intent := range intents {
		if intent == nil {
			continue
		}
		intent.apply(s)
	}
}
