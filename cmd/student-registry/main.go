// main is the entry point of the Student Registry program.
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
//	go run ./cmd/student-registry
//
// or with an explicit backend / config file:
//
//	STORAGE_BACKEND=sqlite go run ./cmd/student-registry
//	go run ./cmd/student-registry --config=config/local.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"deskmate/internal/cli"
	"deskmate/internal/cli/handlers/student"
	"deskmate/internal/config"
	"deskmate/internal/storage"
	"deskmate/internal/storage/memory"
	"deskmate/internal/storage/sqlite"
	"deskmate/internal/utils/logger"
	"deskmate/internal/utils/prompt"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad resolves CONFIG_PATH / --config, falls back to built-in
	// defaults when neither is set, and exits if anything is wrong.
	// If this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// The logger writes to stderr so that scripted sessions reading
	// stdout see only the menu. SetDefault lets the handler packages
	// log through package-level slog calls.
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-registry",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.Storage.Backend),
	)

	// ── 3–5. Run the session over the real stdin/stdout ──────────────────
	if err := run(os.Stdin, os.Stdout, cfg); err != nil {
		log.Error("session failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("student-registry stopped")
}

// run wires the store, the prompter and the menu, then drives the loop.
// It is split out of main so tests can feed a scripted session through
// in and assert on everything that lands in out.
func run(in io.Reader, out io.Writer, cfg *config.Config) error {
	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The handlers only see the storage.StudentStore interface, never a
	// concrete backend, so the two backends are interchangeable here.
	store, err := newStudentStore(cfg)
	if err != nil {
		return fmt.Errorf("run: opening %s storage: %w", cfg.Storage.Backend, err)
	}

	// ── 4. Register Menu Options ──────────────────────────────────────────
	// The handler factories (student.Add, student.List, etc.) receive
	// the store once and return the function the menu dispatches.
	//
	// Option table:
	//   1 → Add Student
	//   2 → View All Students
	//   3 → Update a Student
	//   4 → Remove a Student
	//   5 → Exit
	p := prompt.New(in, out)
	menu := cli.NewMenu("Student Management System Menu", p)

	menu.Handle("1", "Add Student", student.Add(store))
	menu.Handle("2", "View All Students", student.List(store))
	menu.Handle("3", "Update a Student", student.Update(store))
	menu.Handle("4", "Remove a Student", student.Remove(store))
	menu.HandleExit("5", "Exit", "Exiting the Student Management System. Goodbye!")

	// ── 5. Run until Exit or end of input ─────────────────────────────────
	return menu.Run()
}

// newStudentStore opens the backend named in the config. Both backends
// hold data only for the lifetime of the process; sqlite is pinned to
// an in-memory database.
func newStudentStore(cfg *config.Config) (storage.StudentStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.NewStudentStore()
	default:
		return memory.NewStudentStore(), nil
	}
}
