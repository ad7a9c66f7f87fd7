package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/projlib/internal/domain"
	"github.com/mmcdole/projlib/internal/library"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func newModel(t *testing.T, names ...string) Model {
	t.Helper()
	lib := library.New(filepath.Join(t.TempDir(), "projects.toml"))
	for _, name := range names {
		require.NoError(t, lib.AddProject(domain.NewProject(name, "about "+name)))
	}
	m := NewModel(lib, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return next.(Model)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func selectedIndex(t *testing.T, m Model) int {
	t.Helper()
	idx, ok := m.Library.SelectedIndex()
	require.True(t, ok)
	return idx
}

func TestNavigationKeys(t *testing.T) {
	m := newModel(t, "a", "b", "c")

	m, _ = send(t, m, runes("j"))
	assert.Equal(t, 1, selectedIndex(t, m))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, selectedIndex(t, m), "down wraps past the last project")

	m, _ = send(t, m, runes("k"))
	assert.Equal(t, 2, selectedIndex(t, m))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, selectedIndex(t, m))
}

func TestStatusKeys(t *testing.T) {
	m := newModel(t, "a")

	m, _ = send(t, m, space)
	assert.Equal(t, domain.StatusInProgress, m.Library.Projects()[0].Status)

	m, _ = send(t, m, space, space)
	assert.Equal(t, domain.StatusPaused, m.Library.Projects()[0].Status)

	m, _ = send(t, m, runes("S"), runes("S"))
	assert.Equal(t, domain.StatusInProgress, m.Library.Projects()[0].Status)
}

func TestKeysOnEmptyLibrary(t *testing.T) {
	m := newModel(t)
	require.NotPanics(t, func() {
		m, _ = send(t, m, runes("j"), runes("k"), space, runes("S"))
	})
	assert.Equal(t, MainView, m.Mode)
	assert.Contains(t, m.View(), "Project Details")
}

func TestAddProjectFlow(t *testing.T) {
	m := newModel(t, "Website")

	m, cmd := send(t, m, runes("A"))
	assert.Equal(t, AddingProject, m.Mode)
	assert.NotNil(t, cmd, "form focus starts the cursor")
	assert.Contains(t, m.View(), "New Project")

	// q is text while the form is open
	m, _ = send(t, m, runes("CLI "), runes("q"), tab, runes("Terminal tool"))
	assert.Equal(t, AddingProject, m.Mode)

	m, cmd = send(t, m, enter)
	assert.Equal(t, MainView, m.Mode)
	assert.NotNil(t, cmd, "status message clears itself")

	projects := m.Library.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, "CLI q", projects[1].Name)
	assert.Equal(t, "Terminal tool", projects[1].Description)
	assert.Equal(t, domain.StatusIdea, projects[1].Status)
	assert.Equal(t, 0, selectedIndex(t, m), "adding keeps the selection")
	assert.Contains(t, m.View(), `Added "CLI q"`)

	m, _ = send(t, m, ClearStatusMsg{})
	assert.Empty(t, m.StatusMsg)
	assert.Contains(t, m.View(), "space next status")
}

func TestAddProjectRequiresName(t *testing.T) {
	m := newModel(t)

	m, _ = send(t, m, runes("A"), runes("   "), enter)
	assert.Equal(t, AddingProject, m.Mode)
	assert.Equal(t, "Name is required", m.Form.Err())
	assert.Contains(t, m.View(), "Name is required")
	assert.Zero(t, m.Library.Len())

	m, _ = send(t, m, esc)
	assert.Equal(t, MainView, m.Mode)
	assert.Zero(t, m.Library.Len())
}

func TestDeletingPlaceholder(t *testing.T) {
	m := newModel(t, "a")

	m, _ = send(t, m, runes("D"))
	assert.Equal(t, DeletingProject, m.Mode)
	assert.Contains(t, m.View(), "not supported yet")

	m, _ = send(t, m, runes("j"))
	assert.Equal(t, DeletingProject, m.Mode)

	m, _ = send(t, m, esc)
	assert.Equal(t, MainView, m.Mode)
	assert.Equal(t, 1, m.Library.Len())
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"q", []tea.Msg{runes("q")}},
		{"ctrl+c", []tea.Msg{ctrlC}},
		{"ctrl+c in form", []tea.Msg{runes("A"), runes("x"), ctrlC}},
		{"q while deleting", []tea.Msg{runes("D"), runes("q")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, "a")
			m, cmd := send(t, m, tt.keys...)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Exited())
			assert.Equal(t, 1, m.Library.Len(), "unsubmitted form input is dropped")

			m, cmd = send(t, m, runes("j"))
			assert.Nil(t, cmd)
			assert.Equal(t, Exiting, m.Mode)
		})
	}
}

func TestView_Layout(t *testing.T) {
	m := newModel(t, "Website", "CLI Tool")
	m, _ = send(t, m, space)

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, 100, lipgloss.Width(line))
	}

	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "- Website")
	assert.Contains(t, view, "! CLI Tool")
	assert.Contains(t, view, "Project Name: Website")
	assert.Contains(t, view, "Status: In Progress")
	assert.Contains(t, view, "about Website")
	assert.NotContains(t, view, "about CLI Tool")
	assert.Contains(t, view, "q save & quit")

	// list pane takes the left 30 columns
	assert.Equal(t, 30, lipgloss.Width(strings.SplitAfterN(lines[0], "┐", 2)[0]))
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := NewModel(library.New(filepath.Join(t.TempDir(), "p.toml")), nil)
	assert.Equal(t, "Loading...", m.View())
}
