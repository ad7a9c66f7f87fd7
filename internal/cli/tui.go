package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/projlib/internal/tui"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the TUI is started without a terminal
var ErrNotTerminal = errors.New("projlib needs an interactive terminal; use a subcommand such as 'projlib list' in scripts")

// stdioIsTerminal reports whether stdin and stdout are both terminals
var stdioIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI loads the library, runs the interactive program and saves once
// the program has exited
func runTUI(app *App) error {
	if !stdioIsTerminal() {
		return ErrNotTerminal
	}

	history := app.openHistory()
	defer history.Close()

	lib, err := app.openLibrary(history)
	if err != nil {
		return err
	}

	model := tui.NewModel(lib, app.logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	app.logger.Info("starting TUI", "projects", lib.Len())

	final, runErr := p.Run()
	if runErr != nil {
		app.logger.Error("TUI error", "error", runErr)
	} else if m, ok := final.(tui.Model); ok && !m.Exited() {
		app.logger.Warn("TUI stopped without quit request")
	}

	if err := lib.Save(); err != nil {
		app.logger.Error("failed to save projects", "error", err, "path", lib.Path())
		return fmt.Errorf("failed to save projects: %w", err)
	}

	app.logger.Info("shutting down", "projects", lib.Len())
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}
