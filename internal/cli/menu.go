// Package cli implements the interactive menu loop that both console
// programs are built on. The Menu plays the role a router and server
// play in an HTTP service: options are registered against choice
// strings at startup, and Run dispatches one handler per round until
// the exit choice is picked or the input ends.
package cli

import (
	"errors"
	"log/slog"

	"deskmate/internal/utils/prompt"
)

// HandlerFunc is one menu operation.
//
// Handlers report every user-facing outcome themselves (success lines,
// "not found", "please enter a valid number"); the menu never rewords
// an operation's result. The errors a handler returns are out-of-band:
// an exhausted input stream (prompt.ErrInputClosed), which ends the
// session, or a backend fault, which is logged and survived.
type HandlerFunc func(p *prompt.Prompter) error

// option is one registered menu entry.
type option struct {
	choice  string
	label   string
	handler HandlerFunc
}

// Menu is the dispatch loop for one program. Options are displayed in
// registration order, with the exit option last.
type Menu struct {
	title      string
	prompter   *prompt.Prompter
	options    []option
	exitChoice string
	exitLabel  string
	farewell   string
}

// NewMenu returns an empty menu with the given title. The title is
// printed inside the "--- ... ---" banner on every round.
func NewMenu(title string, p *prompt.Prompter) *Menu {
	return &Menu{
		title:    title,
		prompter: p,
	}
}

// Handle registers an operation under a choice string. Choices are
// matched exactly against the typed line: no trimming, no case folding,
// so "1" selects and " 1" does not.
func (m *Menu) Handle(choice, label string, h HandlerFunc) {
	m.options = append(m.options, option{choice: choice, label: label, handler: h})
}

// HandleExit registers the choice that ends the loop and the farewell
// line printed on the way out.
func (m *Menu) HandleExit(choice, label, farewell string) {
	m.exitChoice = choice
	m.exitLabel = label
	m.farewell = farewell
}

// Run shows the menu, reads a choice, and dispatches, over and over.
//
// It returns nil when the user picks the exit choice and when the input
// stream ends (a scripted session that runs out of lines terminates
// normally instead of spinning on a dead reader). An unrecognised
// choice is reported and the menu comes around again. Handler errors
// other than a closed input are logged and the loop continues: no
// operation failure is fatal to the session.
func (m *Menu) Run() error {
	for {
		m.display()

		choice, err := m.prompter.ReadLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				slog.Debug("input closed, leaving menu", slog.String("menu", m.title))
				return nil
			}
			return err
		}

		if choice == m.exitChoice {
			m.prompter.Printf("%s\n", m.farewell)
			slog.Debug("exit chosen", slog.String("menu", m.title))
			return nil
		}

		handler := m.lookup(choice)
		if handler == nil {
			m.prompter.Printf("Invalid choice. Please enter a number between %s and %s.\n",
				m.options[0].choice, m.exitChoice)
			continue
		}

		slog.Debug("dispatching option",
			slog.String("menu", m.title),
			slog.String("choice", choice),
		)

		if err := handler(m.prompter); err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				slog.Debug("input closed mid-operation", slog.String("menu", m.title))
				return nil
			}
			slog.Error("operation failed",
				slog.String("menu", m.title),
				slog.String("choice", choice),
				slog.String("error", err.Error()),
			)
		}
	}
}

// display prints the banner and the option table, exit option last.
func (m *Menu) display() {
	m.prompter.Printf("\n--- %s ---\n", m.title)
	for _, opt := range m.options {
		m.prompter.Printf("%s. %s\n", opt.choice, opt.label)
	}
	m.prompter.Printf("%s. %s\n", m.exitChoice, m.exitLabel)
}

func (m *Menu) lookup(choice string) HandlerFunc {
	for _, opt := range m.options {
		if opt.choice == choice {
			return opt.handler
		}
	}
	return nil
}
