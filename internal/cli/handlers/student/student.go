// Package student contains the menu handlers for the Student Registry.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The menu expects handler functions with the signature:
//
//	func(p *prompt.Prompter) error
//
// That signature has no room for extra parameters like a store.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (the store)
//  2. Returns a function with the exact signature the menu needs
//
// Because the inner function "closes over" the outer parameters, it can
// access the store even after the factory call has returned. Example:
//
//	menu.Handle("1", "Add Student", student.Add(store))
//	//                              ^^^^^^^^^^^^^^^^^^
//	//                 Add(store) is called ONCE at startup.
//	//                 It returns a handler func which is called
//	//                 every time the user picks option 1.
//
// Handlers print every user-facing outcome themselves. The errors they
// return are out-of-band: a closed input stream or a store fault.
package student

import (
	"errors"
	"fmt"
	"log/slog"

	"deskmate/internal/cli"
	"deskmate/internal/storage"
	"deskmate/internal/types"
	"deskmate/internal/utils/prompt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Add handles the "Add Student" option.
// Prompts for a name and an age, then creates the record.
//
// Transcript:
//
//	Enter student name: Alice
//	Enter student age: 20
//	Student added with ID: 1
//
// A non-numeric age is reported ("Please enter a valid age.") and the
// operation ends with nothing added.
// ─────────────────────────────────────────────────────────────────────────────
func Add(store storage.StudentStore) cli.HandlerFunc {
	// This is the factory function. It runs ONCE when the option is
	// registered. It captures `store` in the closure below.

	return func(p *prompt.Prompter) error {
		slog.Debug("adding a student")

		// The name is taken exactly as typed. Empty is allowed; there
		// is no content validation on this field.
		name, err := p.ReadLine("Enter student name: ")
		if err != nil {
			return err
		}

		age, err := p.ReadInt("Enter student age: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Please enter a valid age.\n")
			return nil
		}
		if err != nil {
			return err
		}

		// We call the StudentStore interface method, not a concrete
		// backend. This keeps the handler storage-agnostic.
		id, err := store.CreateStudent(name, age)
		if err != nil {
			return fmt.Errorf("Add: creating student: %w", err)
		}

		slog.Debug("student added", slog.Int64("id", id))
		p.Printf("Student added with ID: %d\n", id)
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles the "View All Students" option.
//
// Transcript:
//
//	--- All Students ---
//	ID: 1, Name: Alice, Age: 20
//	ID: 2, Name: Bob, Age: 22
//
// An empty registry prints "No students in the system." instead.
// ─────────────────────────────────────────────────────────────────────────────
func List(store storage.StudentStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("listing students")

		return printAll(p, store)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles the "Update a Student" option.
// Shows the registry, asks which ID to change, then prompts for the new
// name and age. A blank answer keeps the current value of that field;
// "0" is a real age, distinct from blank.
//
// Transcript:
//
//	--- All Students ---
//	ID: 1, Name: Alice, Age: 20
//	Enter student ID to update: 1
//	Enter new name (leave blank to keep current):
//	Enter new age (leave blank to keep current): 21
//	Student details updated.
//
// Error outcomes, each ending the operation with nothing changed:
//
//	non-numeric ID    — "Invalid input. Please enter a valid student ID."
//	unknown ID        — "Student ID not found." (before any field prompt)
//	non-numeric age   — "Invalid input. Please enter a valid age."
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.StudentStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("updating a student")

		// ── Step 1: Show the registry so the user can pick an ID ──────
		if err := printAll(p, store); err != nil {
			return err
		}

		// ── Step 2: Read and check the target ID ──────────────────────
		id, err := p.ReadInt("Enter student ID to update: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Invalid input. Please enter a valid student ID.\n")
			return nil
		}
		if err != nil {
			return err
		}

		// The existence check runs before the field prompts so the user
		// is not asked for new values of a record that is not there.
		if _, err := store.GetStudentByID(id); err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				p.Printf("Student ID not found.\n")
				return nil
			}
			return fmt.Errorf("Update: looking up id %d: %w", id, err)
		}

		// ── Step 3: Collect the new field values ──────────────────────
		name, err := p.ReadLine("Enter new name (leave blank to keep current): ")
		if err != nil {
			return err
		}

		// ReadOptionalInt maps a blank line to nil, the explicit
		// "keep current" signal. A typed "0" comes back as &0.
		age, err := p.ReadOptionalInt("Enter new age (leave blank to keep current): ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Invalid input. Please enter a valid age.\n")
			return nil
		}
		if err != nil {
			return err
		}

		upd := types.StudentUpdate{Age: age}
		if name != "" {
			upd.Name = &name
		}

		// ── Step 4: Persist ───────────────────────────────────────────
		if _, err := store.UpdateStudentByID(id, upd); err != nil {
			return fmt.Errorf("Update: updating id %d: %w", id, err)
		}

		slog.Debug("student updated", slog.Int64("id", id))
		p.Printf("Student details updated.\n")
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove handles the "Remove a Student" option.
// Shows the registry, asks which ID to delete, and confirms with the
// removed record. The freed ID is never handed out again.
//
// Transcript:
//
//	--- All Students ---
//	ID: 1, Name: Alice, Age: 20
//	Enter student ID to remove: 1
//	Removed student: Name: Alice, Age: 20
//
// Error outcomes:
//
//	non-numeric ID — "Please enter a valid student ID."
//	unknown ID     — "Student ID not found."
//
// ─────────────────────────────────────────────────────────────────────────────
func Remove(store storage.StudentStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("removing a student")

		if err := printAll(p, store); err != nil {
			return err
		}

		id, err := p.ReadInt("Enter student ID to remove: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Please enter a valid student ID.\n")
			return nil
		}
		if err != nil {
			return err
		}

		removed, err := store.DeleteStudentByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				p.Printf("Student ID not found.\n")
				return nil
			}
			return fmt.Errorf("Remove: deleting id %d: %w", id, err)
		}

		slog.Debug("student removed", slog.Int64("id", id))
		p.Printf("Removed student: %s\n", removed)
		return nil
	}
}

// printAll writes the full registry listing, or the empty-registry
// line. Update and Remove show it before asking for an ID.
func printAll(p *prompt.Prompter, store storage.StudentStore) error {
	students, err := store.GetStudents()
	if err != nil {
		return fmt.Errorf("printAll: listing students: %w", err)
	}

	if len(students) == 0 {
		p.Printf("No students in the system.\n")
		return nil
	}

	p.Printf("\n--- All Students ---\n")
	for _, s := range students {
		p.Printf("ID: %d, %s\n", s.ID, s)
	}
	return nil
}
