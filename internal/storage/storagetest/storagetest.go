// Package storagetest holds the behavioral suite every storage backend
// must pass. A backend's test file calls the Run functions with a
// factory that returns a fresh, empty store; each subtest gets its own
// store so cases cannot leak state into each other.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskmate/internal/storage"
	"deskmate/internal/types"
)

func strPtr(s string) *string { return &s }
func agePtr(n int64) *int64   { return &n }

// RunStudentStoreSuite exercises the full StudentStore contract.
func RunStudentStoreSuite(t *testing.T, newStore func(t *testing.T) storage.StudentStore) {
	t.Helper()

	t.Run("fresh store lists nothing", func(t *testing.T) {
		store := newStore(t)

		students, err := store.GetStudents()
		require.NoError(t, err)
		assert.Empty(t, students)
	})

	t.Run("create assigns ids from one", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		id, err = store.CreateStudent("Bob", 22)
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)
	})

	t.Run("get by id returns the stored record", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		got, err := store.GetStudentByID(id)
		require.NoError(t, err)
		assert.Equal(t, types.Student{ID: id, Name: "Alice", Age: 20}, got)
	})

	t.Run("get unknown id reports not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.GetStudentByID(42)
		require.ErrorIs(t, err, storage.ErrStudentNotFound)
	})

	t.Run("list follows insertion order", func(t *testing.T) {
		store := newStore(t)

		for _, name := range []string{"Alice", "Bob", "Carol"} {
			_, err := store.CreateStudent(name, 20)
			require.NoError(t, err)
		}

		students, err := store.GetStudents()
		require.NoError(t, err)
		require.Len(t, students, 3)
		assert.Equal(t, "Alice", students[0].Name)
		assert.Equal(t, "Bob", students[1].Name)
		assert.Equal(t, "Carol", students[2].Name)
	})

	t.Run("removed id is never reassigned", func(t *testing.T) {
		store := newStore(t)

		aliceID, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)
		require.Equal(t, int64(1), aliceID)

		bobID, err := store.CreateStudent("Bob", 22)
		require.NoError(t, err)
		require.Equal(t, int64(2), bobID)

		_, err = store.DeleteStudentByID(aliceID)
		require.NoError(t, err)

		// The third student must not take Alice's freed ID: that value
		// stays retired, so Bob's record can never be collided with.
		carolID, err := store.CreateStudent("Carol", 21)
		require.NoError(t, err)
		assert.Equal(t, int64(3), carolID)

		bob, err := store.GetStudentByID(bobID)
		require.NoError(t, err)
		assert.Equal(t, "Bob", bob.Name)

		students, err := store.GetStudents()
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, int64(2), students[0].ID)
		assert.Equal(t, int64(3), students[1].ID)
	})

	t.Run("update name only keeps age", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		updated, err := store.UpdateStudentByID(id, types.StudentUpdate{Name: strPtr("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, int64(20), updated.Age)
	})

	t.Run("update age only keeps name", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		updated, err := store.UpdateStudentByID(id, types.StudentUpdate{Age: agePtr(21)})
		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
		assert.Equal(t, int64(21), updated.Age)
	})

	t.Run("update can set age to zero", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		// Zero is a real value, not a "keep current" marker. Only a nil
		// pointer means no change.
		updated, err := store.UpdateStudentByID(id, types.StudentUpdate{Age: agePtr(0)})
		require.NoError(t, err)
		assert.Equal(t, int64(0), updated.Age)

		got, err := store.GetStudentByID(id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Age)
	})

	t.Run("update with no fields changes nothing", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		updated, err := store.UpdateStudentByID(id, types.StudentUpdate{})
		require.NoError(t, err)
		assert.Equal(t, types.Student{ID: id, Name: "Alice", Age: 20}, updated)
	})

	t.Run("update unknown id reports not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		_, err = store.UpdateStudentByID(42, types.StudentUpdate{Name: strPtr("Nobody")})
		require.ErrorIs(t, err, storage.ErrStudentNotFound)

		students, err := store.GetStudents()
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, "Alice", students[0].Name)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		store := newStore(t)

		id, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		removed, err := store.DeleteStudentByID(id)
		require.NoError(t, err)
		assert.Equal(t, types.Student{ID: id, Name: "Alice", Age: 20}, removed)

		_, err = store.GetStudentByID(id)
		require.ErrorIs(t, err, storage.ErrStudentNotFound)
	})

	t.Run("delete unknown id leaves records intact", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateStudent("Alice", 20)
		require.NoError(t, err)

		_, err = store.DeleteStudentByID(42)
		require.ErrorIs(t, err, storage.ErrStudentNotFound)

		students, err := store.GetStudents()
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})
}

// RunTaskStoreSuite exercises the full TaskStore contract.
func RunTaskStoreSuite(t *testing.T, newStore func(t *testing.T) storage.TaskStore) {
	t.Helper()

	t.Run("fresh store lists nothing", func(t *testing.T) {
		store := newStore(t)

		tasks, err := store.GetTasks()
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("create returns the new position", func(t *testing.T) {
		store := newStore(t)

		pos, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		assert.Equal(t, int64(1), pos)

		pos, err = store.CreateTask("Walk dog")
		require.NoError(t, err)
		assert.Equal(t, int64(2), pos)
	})

	t.Run("empty text is a valid task", func(t *testing.T) {
		store := newStore(t)

		pos, err := store.CreateTask("")
		require.NoError(t, err)
		require.Equal(t, int64(1), pos)

		got, err := store.GetTaskByPosition(1)
		require.NoError(t, err)
		assert.Equal(t, "", got.Text)
	})

	t.Run("get by position returns the stored task", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		_, err = store.CreateTask("Walk dog")
		require.NoError(t, err)

		got, err := store.GetTaskByPosition(2)
		require.NoError(t, err)
		assert.Equal(t, types.Task{Position: 2, Text: "Walk dog"}, got)
	})

	t.Run("positions outside the range report not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)

		for _, pos := range []int64{0, -3, 2, 99} {
			_, err := store.GetTaskByPosition(pos)
			assert.ErrorIs(t, err, storage.ErrTaskNotFound, "position %d", pos)
		}
	})

	t.Run("list numbers tasks from one", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		_, err = store.CreateTask("Walk dog")
		require.NoError(t, err)

		tasks, err := store.GetTasks()
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, types.Task{Position: 1, Text: "Buy milk"}, tasks[0])
		assert.Equal(t, types.Task{Position: 2, Text: "Walk dog"}, tasks[1])
	})

	t.Run("update replaces the text in place", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		_, err = store.CreateTask("Walk dog")
		require.NoError(t, err)

		updated, err := store.UpdateTaskByPosition(1, "Buy oat milk")
		require.NoError(t, err)
		assert.Equal(t, types.Task{Position: 1, Text: "Buy oat milk"}, updated)

		tasks, err := store.GetTasks()
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Buy oat milk", tasks[0].Text)
		assert.Equal(t, "Walk dog", tasks[1].Text)
	})

	t.Run("update out of range reports not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)

		_, err = store.UpdateTaskByPosition(5, "ghost")
		require.ErrorIs(t, err, storage.ErrTaskNotFound)

		got, err := store.GetTaskByPosition(1)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", got.Text)
	})

	t.Run("remove shifts later tasks down", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		_, err = store.CreateTask("Walk dog")
		require.NoError(t, err)

		removed, err := store.DeleteTaskByPosition(1)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", removed.Text)

		// "Walk dog" now answers to position 1; there is no gap.
		tasks, err := store.GetTasks()
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, types.Task{Position: 1, Text: "Walk dog"}, tasks[0])
	})

	t.Run("remove out of range leaves the list unchanged", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)

		_, err = store.DeleteTaskByPosition(2)
		require.ErrorIs(t, err, storage.ErrTaskNotFound)

		tasks, err := store.GetTasks()
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("add after remove extends the shifted list", func(t *testing.T) {
		store := newStore(t)

		_, err := store.CreateTask("Buy milk")
		require.NoError(t, err)
		_, err = store.CreateTask("Walk dog")
		require.NoError(t, err)
		_, err = store.CreateTask("Water plants")
		require.NoError(t, err)

		_, err = store.DeleteTaskByPosition(2)
		require.NoError(t, err)

		pos, err := store.CreateTask("Read book")
		require.NoError(t, err)
		assert.Equal(t, int64(3), pos)

		tasks, err := store.GetTasks()
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "Buy milk", tasks[0].Text)
		assert.Equal(t, "Water plants", tasks[1].Text)
		assert.Equal(t, "Read book", tasks[2].Text)
	})
}
