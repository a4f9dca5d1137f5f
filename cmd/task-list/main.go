// main is the entry point of the To-Do List program.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env overrides, defaults)
//  2. Initialise the logger on stderr (stdout is the menu surface)
//  3. Open the configured storage backend
//  4. Register the menu options
//  5. Run the menu loop until Exit is chosen or the input ends
//
// RUNNING THE PROGRAM:
//
//	go run ./cmd/task-list
//
// or with an explicit backend / config file:
//
//	STORAGE_BACKEND=sqlite go run ./cmd/task-list
//	go run ./cmd/task-list --config=config/local.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"deskmate/internal/cli"
	"deskmate/internal/cli/handlers/task"
	"deskmate/internal/config"
	"deskmate/internal/storage"
	"deskmate/internal/storage/memory"
	"deskmate/internal/storage/sqlite"
	"deskmate/internal/utils/logger"
	"deskmate/internal/utils/prompt"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting task-list",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Storage.Backend),
	)

	// ── 3–5. Run the session over the real stdin/stdout ──────────────────
	if err := run(os.Stdin, os.Stdout, cfg); err != nil {
		log.Error("session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("task-list stopped")
}

// run wires the store, the prompter and the menu, then drives the loop.
// Tests feed a scripted session through in and assert on out.
func run(in io.Reader, out io.Writer, cfg *config.Config) error {
	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := newTaskStore(cfg)
	if err != nil {
		return fmt.Errorf("run: opening %s storage: %w", cfg.Storage.Backend, err)
	}

	// ── 4. Register Menu Options ──────────────────────────────────────────
	// Option table:
	//   1 → Add a Task
	//   2 → View All Tasks
	//   3 → Update a Task
	//   4 → Remove a Task
	//   5 → Exit
	p := prompt.New(in, out)
	menu := cli.NewMenu("To-Do List Menu", p)

	menu.Handle("1", "Add a Task", task.Add(store))
	menu.Handle("2", "View All Tasks", task.List(store))
	menu.Handle("3", "Update a Task", task.Update(store))
	menu.Handle("4", "Remove a Task", task.Remove(store))
	menu.HandleExit("5", "Exit", "Exiting the To-Do List application. Goodbye!")

	// ── 5. Run until Exit or end of input ─────────────────────────────────
	return menu.Run()
}

// newTaskStore opens the backend named in the config. Both backends
// hold data only for the lifetime of the process; sqlite is pinned to
// an in-memory database.
func newTaskStore(cfg *config.Config) (storage.TaskStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.NewTaskStore()
	default:
		return memory.NewTaskStore(), nil
	}
}
