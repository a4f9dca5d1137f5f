// Package memory provides the map- and slice-backed implementations of
// the storage contracts. This is the default backend: each program
// constructs one store at startup, owns it for the run, and loses the
// contents at exit.
//
// The stores are not synchronized. The menu loop is the only actor
// that ever touches a store, so there is no locking to get wrong.
package memory

import (
	"fmt"
	"slices"

	"deskmate/internal/storage"
	"deskmate/internal/types"
)

// Interface conformance is checked at compile time.
var (
	_ storage.StudentStore = (*StudentStore)(nil)
	_ storage.TaskStore    = (*TaskStore)(nil)
)

// StudentStore keeps the registry in a map keyed by ID.
//
// IDs come from a monotonic counter, not from the map size: after a
// removal the counter keeps climbing, so a removed ID is never assigned
// to a later student and can never collide with a surviving record.
type StudentStore struct {
	nextID  int64
	records map[int64]types.Student
}

// NewStudentStore returns an empty registry.
func NewStudentStore() *StudentStore {
	return &StudentStore{records: make(map[int64]types.Student)}
}

// CreateStudent stores a new record under the next counter value and
// returns the assigned ID.
func (s *StudentStore) CreateStudent(name string, age int64) (int64, error) {
	s.nextID++
	id := s.nextID
	s.records[id] = types.Student{ID: id, Name: name, Age: age}
	return id, nil
}

// GetStudentByID fetches a single record by ID.
func (s *StudentStore) GetStudentByID(id int64) (types.Student, error) {
	student, ok := s.records[id]
	if !ok {
		return types.Student{}, fmt.Errorf("GetStudentByID: id %d: %w", id, storage.ErrStudentNotFound)
	}
	return student, nil
}

// GetStudents returns every record in ascending ID order. IDs are
// monotonic, so that is exactly insertion order.
func (s *StudentStore) GetStudents() ([]types.Student, error) {
	ids := make([]int64, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	students := make([]types.Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, s.records[id])
	}
	return students, nil
}

// UpdateStudentByID applies the non-nil fields of upd to the stored
// record. The record is written back only after every check has passed,
// so a failed update leaves the registry untouched.
func (s *StudentStore) UpdateStudentByID(id int64, upd types.StudentUpdate) (types.Student, error) {
	student, ok := s.records[id]
	if !ok {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: id %d: %w", id, storage.ErrStudentNotFound)
	}
	if upd.Name != nil {
		student.Name = *upd.Name
	}
	if upd.Age != nil {
		student.Age = *upd.Age
	}
	s.records[id] = student
	return student, nil
}

// DeleteStudentByID removes and returns the record. The ID counter is
// left alone: the freed numeric value stays retired.
func (s *StudentStore) DeleteStudentByID(id int64) (types.Student, error) {
	student, ok := s.records[id]
	if !ok {
		return types.Student{}, fmt.Errorf("DeleteStudentByID: id %d: %w", id, storage.ErrStudentNotFound)
	}
	delete(s.records, id)
	return student, nil
}

// TaskStore keeps the to-do list as an ordered slice of task texts.
// Positions are computed from slice indexes on the way out.
type TaskStore struct {
	texts []string
}

// NewTaskStore returns an empty to-do list.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// CreateTask appends the text (empty included) and returns the 1-based
// position of the new entry.
func (s *TaskStore) CreateTask(text string) (int64, error) {
	s.texts = append(s.texts, text)
	return int64(len(s.texts)), nil
}

// GetTaskByPosition fetches the task at a 1-based position.
func (s *TaskStore) GetTaskByPosition(pos int64) (types.Task, error) {
	if pos < 1 || pos > int64(len(s.texts)) {
		return types.Task{}, fmt.Errorf("GetTaskByPosition: position %d: %w", pos, storage.ErrTaskNotFound)
	}
	return types.Task{Position: pos, Text: s.texts[pos-1]}, nil
}

// GetTasks returns the whole list in order with positions filled in.
func (s *TaskStore) GetTasks() ([]types.Task, error) {
	tasks := make([]types.Task, 0, len(s.texts))
	for i, text := range s.texts {
		tasks = append(tasks, types.Task{Position: int64(i + 1), Text: text})
	}
	return tasks, nil
}

// UpdateTaskByPosition replaces the text at a 1-based position.
func (s *TaskStore) UpdateTaskByPosition(pos int64, text string) (types.Task, error) {
	if pos < 1 || pos > int64(len(s.texts)) {
		return types.Task{}, fmt.Errorf("UpdateTaskByPosition: position %d: %w", pos, storage.ErrTaskNotFound)
	}
	s.texts[pos-1] = text
	return types.Task{Position: pos, Text: text}, nil
}

// DeleteTaskByPosition removes and returns the task at a 1-based
// position. Every later task shifts down by one.
func (s *TaskStore) DeleteTaskByPosition(pos int64) (types.Task, error) {
	if pos < 1 || pos > int64(len(s.texts)) {
		return types.Task{}, fmt.Errorf("DeleteTaskByPosition: position %d: %w", pos, storage.ErrTaskNotFound)
	}
	removed := s.texts[pos-1]
	s.texts = slices.Delete(s.texts, int(pos-1), int(pos))
	return types.Task{Position: pos, Text: removed}, nil
}
