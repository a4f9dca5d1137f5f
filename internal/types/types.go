// Package types holds the shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

import "fmt"

// Student represents one registry record.
//
// The ID is assigned by the store when the record is created and is
// never handed out again during a run, even after the record has been
// removed. Name and Age are stored exactly as entered: the console
// accepts any name text and any integer age.
type Student struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int64  `json:"age"`
}

// String renders the record the way the console reports it, e.g. in
// "Removed student: Name: Alice, Age: 20".
func (s Student) String() string {
	return fmt.Sprintf("Name: %s, Age: %d", s.Name, s.Age)
}

// StudentUpdate carries the new values for an update operation.
//
// A nil field means "keep the stored value". A non-nil pointer is
// always applied, so an explicit age of 0 is a real change and not a
// "leave unchanged" signal — the two cases stay distinguishable.
type StudentUpdate struct {
	Name *string `json:"name,omitempty"`
	Age  *int64  `json:"age,omitempty"`
}

// Task represents one to-do entry.
//
// Position is the 1-based display order. It is derived from the
// sequence at read time and never stored: removing a task renumbers
// every task behind it.
type Task struct {
	Position int64  `json:"position"`
	Text     string `json:"text"`
}
