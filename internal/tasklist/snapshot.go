package tasklist

// Snapshot is a point-in-time copy of a store, as consumed by presentation.
// Mutating a snapshot never affects the store it came from.
type Snapshot struct {
	Tasks       []Task
	Visible     []Task
	Filter      Filter
	Edit        EditState
	ComposeText string
}

// Empty reports whether the filtered view has nothing to show.
func (s Snapshot) Empty() bool {
	return len(s.Visible) == 0
}

// CompletedCount returns how many stored tasks are completed.
func (s Snapshot) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// ActiveCount returns how many stored tasks are still open.
func (s Snapshot) ActiveCount() int {
	return len(s.Tasks) - s.CompletedCount()
}
