package tasklist

// Store holds the task collection and selection state of one page load.
type Store struct {
	tasks       []Task
	filter      Filter
	edit        EditState
	composeText string
	// lastID is the highest id ever issued or seeded; ids are never reused.
	lastID int
}

// New returns a store seeded with the given tasks. Seed entries with a
// non-positive or duplicate id, or with blank text, are skipped.
func New(seed ...Task) *Store {
	s := &Store{filter: FilterAll}
	seen := make(map[int]struct{}, len(seed))
	for _, t := range seed {
		text := normalizeText(t.Text)
		if t.ID <= 0 || text == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		s.tasks = append(s.tasks, Task{ID: t.ID, Text: text, Completed: t.Completed})
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

// Create appends a new open task with the trimmed text and clears the
// compose draft. Blank text is ignored.
func (s *Store) Create(rawText string) {
	text := normalizeText(rawText)
	if text == "" {
		return
	}
	id := s.nextID()
	s.tasks = append(s.tasks, Task{ID: id, Text: text})
	s.lastID = id
	s.composeText = ""
}

func (s *Store) nextID() int {
	maxID := s.lastID
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// ToggleComplete flips the completion flag of the task with id.
func (s *Store) ToggleComplete(id int) {
	if i := s.indexOf(id); i >= 0 {
		s.tasks[i].Completed = !s.tasks[i].Completed
	}
}

// Delete removes the task with id. Deleting the task under edit leaves edit
// mode.
func (s *Store) Delete(id int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	if s.edit.Editing(id) {
		s.edit = EditState{}
	}
}

// BeginEdit enters edit mode for id with currentText as the draft. A draft in
// progress for another task is discarded without saving. Unknown ids are
// ignored.
func (s *Store) BeginEdit(id int, currentText string) {
	if s.indexOf(id) < 0 {
		return
	}
	s.edit = EditState{Active: true, TaskID: id, Draft: currentText}
}

// SetEditDraft replaces the draft of the task under edit. It does nothing
// when no task is being edited.
func (s *Store) SetEditDraft(text string) {
	if !s.edit.Active {
		return
	}
	s.edit.Draft = text
}

// CommitEdit applies the trimmed draft to the task under edit and leaves
// edit mode. A blank draft keeps the task's previous text.
func (s *Store) CommitEdit() {
	if !s.edit.Active {
		return
	}
	if text := normalizeText(s.edit.Draft); text != "" {
		if i := s.indexOf(s.edit.TaskID); i >= 0 {
			s.tasks[i].Text = text
		}
	}
	s.edit = EditState{}
}

// CancelEdit leaves edit mode without applying the draft.
func (s *Store) CancelEdit() {
	s.edit = EditState{}
}

// SetFilter replaces the active filter.
func (s *Store) SetFilter(f Filter) {
	s.filter = f
}

// SetComposeText replaces the draft for the next task.
func (s *Store) SetComposeText(text string) {
	s.composeText = text
}

// VisibleTasks returns the tasks matching the active filter in insertion
// order.
func (s *Store) VisibleTasks() []Task {
	visible := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.filter.Matches(t) {
			visible = append(visible, t)
		}
	}
	return visible
}

// Tasks returns a copy of the full collection in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task returns the task with id.
func (s *Store) Task(id int) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Filter returns the active filter.
func (s *Store) Filter() Filter { return s.filter }

// Edit returns the edit-mode state.
func (s *Store) Edit() EditState { return s.edit }

// ComposeText returns the draft for the next task.
func (s *Store) ComposeText() string { return s.composeText }

// Snapshot copies the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Tasks:       s.Tasks(),
		Visible:     s.VisibleTasks(),
		Filter:      s.filter,
		Edit:        s.edit,
		ComposeText: s.composeText,
	}
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
