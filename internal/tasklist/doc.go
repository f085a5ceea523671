// Package tasklist owns the in-memory task collection of one page load and
// the transient selection state around it (active filter, edit mode and the
// compose draft).
//
// Every mutation goes through a Store operation or an Intent passed to
// Store.Dispatch. Operations are total: input that cannot be applied leaves
// the store unchanged instead of returning an error.
//
// A Store is not safe for concurrent use. Callers serialize access, one
// intent at a time.
package tasklist
