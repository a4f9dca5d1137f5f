package memory

import (
	"testing"

	"pgregory.net/rapid"

	"deskmate/internal/storage"
	"deskmate/internal/storage/storagetest"
)

func TestStudentStore_Suite(t *testing.T) {
	storagetest.RunStudentStoreSuite(t, func(t *testing.T) storage.StudentStore {
		return NewStudentStore()
	})
}

func TestTaskStore_Suite(t *testing.T) {
	storagetest.RunTaskStoreSuite(t, func(t *testing.T) storage.TaskStore {
		return NewTaskStore()
	})
}

// =============================================================================
// Property: student IDs are strictly increasing and never reused
// =============================================================================

func testStudentIDs_NeverReused_Properties(t *rapid.T) {
	store := NewStudentStore()

	seen := make(map[int64]bool)
	var live []int64 // IDs of surviving records, in assignment order
	var lastID int64

	steps := rapid.IntRange(1, 40).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		add := len(live) == 0 || rapid.Bool().Draw(t, "add")

		if add {
			name := rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(t, "name")
			age := int64(rapid.IntRange(0, 120).Draw(t, "age"))

			id, err := store.CreateStudent(name, age)
			if err != nil {
				t.Fatalf("CreateStudent failed: %v", err)
			}

			// Property: every assigned ID is above all earlier ones.
			if id <= lastID {
				t.Fatalf("expected an ID above %d, got %d", lastID, id)
			}
			// Property: an ID observed once is never assigned again.
			if seen[id] {
				t.Fatalf("ID %d assigned twice", id)
			}
			seen[id] = true
			lastID = id
			live = append(live, id)
			continue
		}

		idx := rapid.IntRange(0, len(live)-1).Draw(t, "victim")
		if _, err := store.DeleteStudentByID(live[idx]); err != nil {
			t.Fatalf("DeleteStudentByID(%d) failed: %v", live[idx], err)
		}
		live = append(live[:idx], live[idx+1:]...)
	}

	// Property: the listing holds exactly the surviving IDs, in order.
	students, err := store.GetStudents()
	if err != nil {
		t.Fatalf("GetStudents failed: %v", err)
	}
	if len(students) != len(live) {
		t.Fatalf("expected %d students, got %d", len(live), len(students))
	}
	for i, s := range students {
		if s.ID != live[i] {
			t.Fatalf("position %d: expected ID %d, got %d", i, live[i], s.ID)
		}
	}
}

func TestStudentIDs_NeverReused_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testStudentIDs_NeverReused_Properties)
}

func FuzzStudentIDs_NeverReused_Properties(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(testStudentIDs_NeverReused_Properties))
}

// =============================================================================
// Property: the task list always matches a plain slice model
// =============================================================================

func testTaskList_MatchesModel_Properties(t *rapid.T) {
	store := NewTaskStore()
	var model []string

	textGen := rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[A-Za-z ]{1,20}`),
	)

	steps := rapid.IntRange(1, 40).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		op := rapid.IntRange(0, 2).Draw(t, "op")
		if len(model) == 0 {
			op = 0
		}

		switch op {
		case 0: // add
			text := textGen.Draw(t, "text")
			pos, err := store.CreateTask(text)
			if err != nil {
				t.Fatalf("CreateTask failed: %v", err)
			}
			model = append(model, text)

			// Property: a new task lands at the end of the list.
			if pos != int64(len(model)) {
				t.Fatalf("expected position %d, got %d", len(model), pos)
			}

		case 1: // update
			pos := rapid.IntRange(1, len(model)).Draw(t, "pos")
			text := textGen.Draw(t, "text")
			if _, err := store.UpdateTaskByPosition(int64(pos), text); err != nil {
				t.Fatalf("UpdateTaskByPosition(%d) failed: %v", pos, err)
			}
			model[pos-1] = text

		default: // remove
			pos := rapid.IntRange(1, len(model)).Draw(t, "pos")
			removed, err := store.DeleteTaskByPosition(int64(pos))
			if err != nil {
				t.Fatalf("DeleteTaskByPosition(%d) failed: %v", pos, err)
			}

			// Property: removal hands back the task the model holds there.
			if removed.Text != model[pos-1] {
				t.Fatalf("expected removed text %q, got %q", model[pos-1], removed.Text)
			}
			model = append(model[:pos-1], model[pos:]...)
		}
	}

	// Property: position N shows the Nth surviving task, no gaps.
	tasks, err := store.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks failed: %v", err)
	}
	if len(tasks) != len(model) {
		t.Fatalf("expected %d tasks, got %d", len(model), len(tasks))
	}
	for i, task := range tasks {
		if task.Position != int64(i+1) {
			t.Fatalf("index %d: expected position %d, got %d", i, i+1, task.Position)
		}
		if task.Text != model[i] {
			t.Fatalf("position %d: expected text %q, got %q", i+1, model[i], task.Text)
		}
	}
}

func TestTaskList_MatchesModel_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testTaskList_MatchesModel_Properties)
}

func FuzzTaskList_MatchesModel_Properties(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(testTaskList_MatchesModel_Properties))
}
