// Package storage defines the store interfaces — the contracts that any
// collection backend must satisfy to work with the console programs.
//
// Handlers depend only on these interfaces, never on a concrete
// backend, so the map-backed store and the SQLite-backed store are
// interchangeable via one line in main, and tests can run every
// operation against either.
//
// Parse failures never reach a store: handlers hand over well-typed
// IDs, positions and values. The only failures a store reports are the
// sentinel lookup errors below and backend-internal faults.
package storage

import (
	"errors"

	"deskmate/internal/types"
)

// Sentinel lookup failures. Handlers branch on these with errors.Is to
// report "not found" separately from malformed input.
var (
	// ErrStudentNotFound is returned when no record exists for the
	// requested student ID.
	ErrStudentNotFound = errors.New("student not found")

	// ErrTaskNotFound is returned when a task position is outside
	// [1, list length].
	ErrTaskNotFound = errors.New("task number out of range")
)

// StudentStore is the registry contract: students keyed by an integer
// ID that is assigned at creation and never reused within a run.
type StudentStore interface {
	// CreateStudent inserts a new record and returns the assigned ID.
	// IDs are strictly increasing across any add/remove interleaving.
	CreateStudent(name string, age int64) (int64, error)

	// GetStudentByID fetches a single record by ID.
	// Returns ErrStudentNotFound if the ID is unknown.
	GetStudentByID(id int64) (types.Student, error)

	// GetStudents returns every record in insertion order.
	// Returns an empty slice (not nil) when the registry is empty.
	GetStudents() ([]types.Student, error)

	// UpdateStudentByID applies the non-nil fields of upd to an
	// existing record and returns the record as stored afterwards.
	// Returns ErrStudentNotFound if the ID is unknown; the record is
	// untouched on any error.
	UpdateStudentByID(id int64, upd types.StudentUpdate) (types.Student, error)

	// DeleteStudentByID removes a record and returns it so the caller
	// can report what was removed. Returns ErrStudentNotFound if the
	// ID is unknown.
	DeleteStudentByID(id int64) (types.Student, error)
}

// TaskStore is the to-do list contract: free-text tasks addressed by
// their 1-based position. Removing a task shifts every later task down
// by one, so positions are always contiguous.
type TaskStore interface {
	// CreateTask appends a task (empty text included) and returns its
	// 1-based position, which always equals the new list length.
	CreateTask(text string) (int64, error)

	// GetTaskByPosition fetches the task at a 1-based position.
	// Returns ErrTaskNotFound when the position is out of range.
	GetTaskByPosition(pos int64) (types.Task, error)

	// GetTasks returns the whole list in order with positions filled
	// in. Returns an empty slice (not nil) when the list is empty.
	GetTasks() ([]types.Task, error)

	// UpdateTaskByPosition replaces the text at a 1-based position and
	// returns the updated task. Returns ErrTaskNotFound when the
	// position is out of range; the list is untouched on any error.
	UpdateTaskByPosition(pos int64, text string) (types.Task, error)

	// DeleteTaskByPosition removes the task at a 1-based position and
	// returns it. Later tasks shift down by one. Returns
	// ErrTaskNotFound when the position is out of range.
	DeleteTaskByPosition(pos int64) (types.Task, error)
}
