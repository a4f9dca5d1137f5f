// Package task contains the menu handlers for the To-Do List.
//
// The handlers follow the same closure/factory pattern as the student
// package: each factory takes the store once at registration time and
// returns the func the menu dispatches on every pick. Tasks are
// addressed by their current 1-based list number, which shifts when an
// earlier task is removed, so every handler that needs a number shows
// the list first.
package task

import (
	"errors"
	"fmt"
	"log/slog"

	"deskmate/internal/cli"
	"deskmate/internal/storage"
	"deskmate/internal/utils/prompt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Add handles the "Add a Task" option.
//
// Transcript:
//
//	Enter the new task: Buy milk
//	'Buy milk' has been added to the to-do list.
//
// The text is appended exactly as typed; an empty line is a valid task.
// ─────────────────────────────────────────────────────────────────────────────
func Add(store storage.TaskStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("adding a task")

		text, err := p.ReadLine("Enter the new task: ")
		if err != nil {
			return err
		}

		pos, err := store.CreateTask(text)
		if err != nil {
			return fmt.Errorf("Add: creating task: %w", err)
		}

		slog.Debug("task added", slog.Int64("position", pos))
		p.Printf("'%s' has been added to the to-do list.\n", text)
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles the "View All Tasks" option.
//
// Transcript:
//
//	--- Your To-Do List ---
//	1. Buy milk
//	2. Walk dog
//
// An empty list prints "Your to-do list is empty." instead.
// ─────────────────────────────────────────────────────────────────────────────
func List(store storage.TaskStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("listing tasks")

		return printAll(p, store)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles the "Update a Task" option.
// Shows the list, asks for a task number, then replaces that task's
// text with the next line, whatever it is.
//
// Transcript:
//
//	--- Your To-Do List ---
//	1. Buy milk
//	Enter the task number to update: 1
//	Enter the new description for the task: Buy oat milk
//	Task 1 has been updated to 'Buy oat milk'.
//
// Error outcomes, each ending the operation with nothing changed:
//
//	non-numeric number  — "Please enter a valid number."
//	out-of-range number — "Invalid task number."
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.TaskStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("updating a task")

		if err := printAll(p, store); err != nil {
			return err
		}

		pos, err := p.ReadInt("Enter the task number to update: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Please enter a valid number.\n")
			return nil
		}
		if err != nil {
			return err
		}

		// Range-check before prompting for the replacement text, so a
		// bad number is reported without asking for a description.
		if _, err := store.GetTaskByPosition(pos); err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				p.Printf("Invalid task number.\n")
				return nil
			}
			return fmt.Errorf("Update: looking up task %d: %w", pos, err)
		}

		text, err := p.ReadLine("Enter the new description for the task: ")
		if err != nil {
			return err
		}

		if _, err := store.UpdateTaskByPosition(pos, text); err != nil {
			return fmt.Errorf("Update: updating task %d: %w", pos, err)
		}

		slog.Debug("task updated", slog.Int64("position", pos))
		p.Printf("Task %d has been updated to '%s'.\n", pos, text)
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove handles the "Remove a Task" option.
// Shows the list, asks for a task number, removes that task and closes
// the gap: every later task moves up one position.
//
// Transcript:
//
//	--- Your To-Do List ---
//	1. Buy milk
//	2. Walk dog
//	Enter the task number to remove: 1
//	'Buy milk' has been removed from the list.
//
// Error outcomes are the same as Update's.
// ─────────────────────────────────────────────────────────────────────────────
func Remove(store storage.TaskStore) cli.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Debug("removing a task")

		if err := printAll(p, store); err != nil {
			return err
		}

		pos, err := p.ReadInt("Enter the task number to remove: ")
		if errors.Is(err, prompt.ErrNotANumber) {
			p.Printf("Please enter a valid number.\n")
			return nil
		}
		if err != nil {
			return err
		}

		removed, err := store.DeleteTaskByPosition(pos)
		if err != nil {
			if errors.Is(err, storage.ErrTaskNotFound) {
				p.Printf("Invalid task number.\n")
				return nil
			}
			return fmt.Errorf("Remove: deleting task %d: %w", pos, err)
		}

		slog.Debug("task removed", slog.Int64("position", pos))
		p.Printf("'%s' has been removed from the list.\n", removed.Text)
		return nil
	}
}

// printAll writes the numbered list, or the empty-list line.
func printAll(p *prompt.Prompter, store storage.TaskStore) error {
	tasks, err := store.GetTasks()
	if err != nil {
		return fmt.Errorf("printAll: listing tasks: %w", err)
	}

	if len(tasks) == 0 {
		p.Printf("Your to-do list is empty.\n")
		return nil
	}

	p.Printf("\n--- Your To-Do List ---\n")
	for _, t := range tasks {
		p.Printf("%d. %s\n", t.Position, t.Text)
	}
	return nil
}
