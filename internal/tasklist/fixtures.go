package tasklist

// Fixtures returns the tasks a fresh page load starts with when seeding is
// enabled.
func Fixtures() []Task {
	return []Task{
		{ID: 1, Text: "Buy groceries for next week", Completed: true},
		{ID: 2, Text: "Make a new project"},
		{ID: 3, Text: "Sign up for online course"},
	}
}
