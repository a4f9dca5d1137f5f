// Package sqlite provides SQLite-backed implementations of the storage
// contracts using Go's standard database/sql package.
//
// Every store opens the ":memory:" database: the collection lives only
// inside the process, exactly like the map backend, and vanishes when
// the process exits. SQLite's AUTOINCREMENT rowid gives the registry
// the same never-reuse ID guarantee the memory backend enforces with
// its counter.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this when the package is loaded —
// nothing from it is called directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"deskmate/internal/storage"
	"deskmate/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// Interface conformance is checked at compile time.
var (
	_ storage.StudentStore = (*StudentStore)(nil)
	_ storage.TaskStore    = (*TaskStore)(nil)
)

// openInMemory opens a fresh in-memory database.
//
// database/sql manages a connection pool, and every new connection to
// ":memory:" would get its own empty database. The pool is capped at a
// single connection so that every statement sees the same data.
func openInMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// StudentStore is the SQLite implementation of storage.StudentStore.
type StudentStore struct {
	db *sql.DB
}

// NewStudentStore opens an in-memory database and creates the students
// table.
//
// AUTOINCREMENT makes SQLite assign strictly increasing IDs and never
// hand out the value of a deleted row again, which is the registry's
// ID contract.
func NewStudentStore() (*StudentStore, error) {
	db, err := openInMemory()
	if err != nil {
		return nil, fmt.Errorf("sqlite.NewStudentStore: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT    NOT NULL,
			age  INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.NewStudentStore: create table: %w", err)
	}

	return &StudentStore{db: db}, nil
}

// CreateStudent inserts a new row and returns the auto-generated ID.
func (s *StudentStore) CreateStudent(name string, age int64) (int64, error) {
	stmt, err := s.db.Prepare(
		"INSERT INTO students (name, age) VALUES (?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(name, age)
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return lastID, nil
}

// GetStudentByID fetches exactly one row matched by primary key.
func (s *StudentStore) GetStudentByID(id int64) (types.Student, error) {
	stmt, err := s.db.Prepare(
		"SELECT id, name, age FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student
	err = stmt.QueryRow(id).Scan(&student.ID, &student.Name, &student.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("GetStudentByID: id %d: %w", id, storage.ErrStudentNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// GetStudents returns all rows in ascending ID order, which equals
// insertion order because IDs never decrease.
func (s *StudentStore) GetStudents() ([]types.Student, error) {
	stmt, err := s.db.Prepare(
		"SELECT id, name, age FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)
	for rows.Next() {
		var student types.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Age); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// UpdateStudentByID applies the non-nil fields of upd to an existing
// row. A nil pointer binds as NULL and COALESCE keeps the stored value,
// so "no change" never round-trips through a sentinel value.
func (s *StudentStore) UpdateStudentByID(id int64, upd types.StudentUpdate) (types.Student, error) {
	stmt, err := s.db.Prepare(
		"UPDATE students SET name = COALESCE(?, name), age = COALESCE(?, age) WHERE id = ?",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(upd.Name, upd.Age, id)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: id %d: %w", id, storage.ErrStudentNotFound)
	}

	// Re-fetch the row so the caller gets exactly what is stored.
	return s.GetStudentByID(id)
}

// DeleteStudentByID removes a row by primary key and returns the
// removed record.
func (s *StudentStore) DeleteStudentByID(id int64) (types.Student, error) {
	student, err := s.GetStudentByID(id)
	if err != nil {
		return types.Student{}, err
	}

	stmt, err := s.db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return types.Student{}, fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return types.Student{}, fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	return student, nil
}

// TaskStore is the SQLite implementation of storage.TaskStore.
//
// Rows carry an AUTOINCREMENT id purely for ordering; the 1-based
// positions the contract speaks are computed from that order on every
// read, so deleting a row renumbers everything behind it for free.
type TaskStore struct {
	db *sql.DB
}

// NewTaskStore opens an in-memory database and creates the tasks table.
func NewTaskStore() (*TaskStore, error) {
	db, err := openInMemory()
	if err != nil {
		return nil, fmt.Errorf("sqlite.NewTaskStore: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.NewTaskStore: create table: %w", err)
	}

	return &TaskStore{db: db}, nil
}

// CreateTask appends a row and returns its 1-based position, which is
// the row count after the insert.
func (s *TaskStore) CreateTask(text string) (int64, error) {
	stmt, err := s.db.Prepare("INSERT INTO tasks (text) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("CreateTask: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(text); err != nil {
		return 0, fmt.Errorf("CreateTask: exec: %w", err)
	}

	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("CreateTask: count: %w", err)
	}

	return count, nil
}

// rowAtPosition resolves a 1-based position to the backing row.
func (s *TaskStore) rowAtPosition(pos int64) (int64, string, error) {
	if pos < 1 {
		return 0, "", fmt.Errorf("rowAtPosition: position %d: %w", pos, storage.ErrTaskNotFound)
	}

	stmt, err := s.db.Prepare(
		"SELECT id, text FROM tasks ORDER BY id LIMIT 1 OFFSET ?",
	)
	if err != nil {
		return 0, "", fmt.Errorf("rowAtPosition: prepare: %w", err)
	}
	defer stmt.Close()

	var (
		rowID int64
		text  string
	)
	err = stmt.QueryRow(pos - 1).Scan(&rowID, &text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", fmt.Errorf("rowAtPosition: position %d: %w", pos, storage.ErrTaskNotFound)
		}
		return 0, "", fmt.Errorf("rowAtPosition: scan: %w", err)
	}

	return rowID, text, nil
}

// GetTaskByPosition fetches the task at a 1-based position.
func (s *TaskStore) GetTaskByPosition(pos int64) (types.Task, error) {
	_, text, err := s.rowAtPosition(pos)
	if err != nil {
		return types.Task{}, err
	}
	return types.Task{Position: pos, Text: text}, nil
}

// GetTasks returns the whole list in row order with positions filled in.
func (s *TaskStore) GetTasks() ([]types.Task, error) {
	stmt, err := s.db.Prepare("SELECT text FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("GetTasks: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetTasks: query: %w", err)
	}
	defer rows.Close()

	tasks := make([]types.Task, 0)
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("GetTasks: scan row: %w", err)
		}
		tasks = append(tasks, types.Task{Position: int64(len(tasks) + 1), Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetTasks: rows iteration: %w", err)
	}

	return tasks, nil
}

// UpdateTaskByPosition replaces the text at a 1-based position.
func (s *TaskStore) UpdateTaskByPosition(pos int64, text string) (types.Task, error) {
	rowID, _, err := s.rowAtPosition(pos)
	if err != nil {
		return types.Task{}, err
	}

	stmt, err := s.db.Prepare("UPDATE tasks SET text = ? WHERE id = ?")
	if err != nil {
		return types.Task{}, fmt.Errorf("UpdateTaskByPosition: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(text, rowID); err != nil {
		return types.Task{}, fmt.Errorf("UpdateTaskByPosition: exec: %w", err)
	}

	return types.Task{Position: pos, Text: text}, nil
}

// DeleteTaskByPosition removes the task at a 1-based position and
// returns it. Positions behind it shift down because they are derived
// from row order, never stored.
func (s *TaskStore) DeleteTaskByPosition(pos int64) (types.Task, error) {
	rowID, text, err := s.rowAtPosition(pos)
	if err != nil {
		return types.Task{}, err
	}

	stmt, err := s.db.Prepare("DELETE FROM tasks WHERE id = ?")
	if err != nil {
		return types.Task{}, fmt.Errorf("DeleteTaskByPosition: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(rowID); err != nil {
		return types.Task{}, fmt.Errorf("DeleteTaskByPosition: exec: %w", err)
	}

	return types.Task{Position: pos, Text: text}, nil
}
