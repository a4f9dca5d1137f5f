package task

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskmate/internal/cli"
	"deskmate/internal/storage"
	"deskmate/internal/storage/memory"
	"deskmate/internal/utils/prompt"
)

func runHandler(t *testing.T, h cli.HandlerFunc, input string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := h(prompt.New(strings.NewReader(input), out))
	return out.String(), err
}

func mustAdd(t *testing.T, store storage.TaskStore, texts ...string) {
	t.Helper()
	for _, text := range texts {
		_, err := store.CreateTask(text)
		require.NoError(t, err)
	}
}

func TestAdd_AppendsTheTask(t *testing.T) {
	store := memory.NewTaskStore()

	out, err := runHandler(t, Add(store), "Buy milk\n")

	require.NoError(t, err)
	assert.Equal(t,
		"Enter the new task: 'Buy milk' has been added to the to-do list.\n",
		out)

	got, err := store.GetTaskByPosition(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Text)
}

func TestAdd_AcceptsAnEmptyTask(t *testing.T) {
	store := memory.NewTaskStore()

	out, err := runHandler(t, Add(store), "\n")

	require.NoError(t, err)
	assert.Contains(t, out, "'' has been added to the to-do list.\n")

	tasks, err := store.GetTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestList_EmptyList(t *testing.T) {
	store := memory.NewTaskStore()

	out, err := runHandler(t, List(store), "")

	require.NoError(t, err)
	assert.Equal(t, "Your to-do list is empty.\n", out)
}

func TestList_NumbersTasksFromOne(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk", "Walk dog")

	out, err := runHandler(t, List(store), "")

	require.NoError(t, err)
	assert.Equal(t,
		"\n--- Your To-Do List ---\n"+
			"1. Buy milk\n"+
			"2. Walk dog\n",
		out)
}

func TestList_RemovalShiftsNumbersDown(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk", "Walk dog")

	_, err := runHandler(t, Remove(store), "1\n")
	require.NoError(t, err)

	out, err := runHandler(t, List(store), "")
	require.NoError(t, err)
	assert.Equal(t,
		"\n--- Your To-Do List ---\n"+
			"1. Walk dog\n",
		out)
}

func TestUpdate_ReplacesTheText(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	out, err := runHandler(t, Update(store), "1\nBuy oat milk\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter the task number to update: ")
	assert.Contains(t, out, "Enter the new description for the task: ")
	assert.Contains(t, out, "Task 1 has been updated to 'Buy oat milk'.\n")

	got, err := store.GetTaskByPosition(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.Text)
}

func TestUpdate_RejectsANonNumericNumber(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	out, err := runHandler(t, Update(store), "abc\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid number.\n")
	assert.NotContains(t, out, "Enter the new description",
		"the description prompt must not appear after a bad number")
}

func TestUpdate_RejectsAnOutOfRangeNumber(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	out, err := runHandler(t, Update(store), "5\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid task number.\n")
	assert.NotContains(t, out, "Enter the new description")

	got, err := store.GetTaskByPosition(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Text)
}

func TestUpdate_ReportsClosedInput(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	// The script ends before the description prompt is answered.
	_, err := runHandler(t, Update(store), "1\n")

	require.ErrorIs(t, err, prompt.ErrInputClosed)
}

func TestRemove_DeletesAndEchoesTheTask(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk", "Walk dog")

	out, err := runHandler(t, Remove(store), "1\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter the task number to remove: ")
	assert.Contains(t, out, "'Buy milk' has been removed from the list.\n")

	got, err := store.GetTaskByPosition(1)
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", got.Text, "the survivor moved up to position 1")
}

func TestRemove_RejectsANonNumericNumber(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	out, err := runHandler(t, Remove(store), "abc\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid number.\n")

	tasks, err := store.GetTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestRemove_RejectsAnOutOfRangeNumber(t *testing.T) {
	store := memory.NewTaskStore()
	mustAdd(t, store, "Buy milk")

	out, err := runHandler(t, Remove(store), "0\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid task number.\n")

	tasks, err := store.GetTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
