package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/projlib/internal/library"
	"github.com/mmcdole/projlib/internal/tui/components"
	"github.com/mmcdole/projlib/internal/tui/styles"
)

// Mode represents the current interaction mode of the application
type Mode int

const (
	MainView Mode = iota
	AddingProject
	DeletingProject
	Exiting
)

func (m Mode) String() string {
	switch m {
	case MainView:
		return "main"
	case AddingProject:
		return "adding"
	case DeletingProject:
		return "deleting"
	case Exiting:
		return "exiting"
	}
	return "unknown"
}

// Model is the main Bubble Tea model for the application. It borrows
// the library; the caller owns it and saves it once the program exits.
type Model struct {
	// Application state
	Mode  Mode
	Ready bool

	Library *library.Library

	// UI Components
	Form components.ProjectForm
	Help help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg string

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(lib *library.Library, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle

	return Model{
		Mode:    MainView,
		Library: lib,
		Form:    components.NewProjectForm(),
		Help:    h,
		logger:  logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Help.Width = max(m.Width-barBorder, 0)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ClearStatusMsg:
		m.StatusMsg = ""
		return m, nil
	}

	// Cursor blink and other component messages
	if m.Mode == AddingProject {
		var cmd tea.Cmd
		m.Form, cmd, _ = m.Form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Exited reports whether the user asked to save and quit
func (m Model) Exited() bool {
	return m.Mode == Exiting
}
