package tasklist

import "strings"

// Task is one list item.
type Task struct {
	ID        int
	Text      string
	Completed bool
}

// Filter selects which tasks are visible. It never changes stored data.
type Filter string

const (
	FilterAll       Filter = "All"
	FilterCompleted Filter = "Completed"
	FilterActive    Filter = "Active"
)

// Filters lists the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterActive}
}

// ParseFilter maps a raw selector value onto the closed filter set.
// Matching ignores case and surrounding whitespace.
func ParseFilter(raw string) (Filter, bool) {
	raw = strings.TrimSpace(raw)
	for _, f := range Filters() {
		if strings.EqualFold(raw, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Matches reports whether task is visible under f. Unknown filters behave
// like FilterAll.
func (f Filter) Matches(task Task) bool {
	switch f {
	case FilterCompleted:
		return task.Completed
	case FilterActive:
		return !task.Completed
	default:
		return true
	}
}

// EditState is the edit-mode state machine: Idle when Active is false,
// otherwise Editing(TaskID, Draft).
type EditState struct {
	Active bool
	TaskID int
	Draft  string
}

// Editing reports whether id is the task under edit.
func (e EditState) Editing(id int) bool {
	return e.Active && e.TaskID == id
}

func normalizeText(raw string) string {
	return strings.TrimSpace(raw)
}
