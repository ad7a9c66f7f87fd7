package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/projlib/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Mode {
	case Exiting:
		return m, nil

	case AddingProject:
		return m.handleFormKey(msg)

	case DeletingProject:
		switch {
		case key.Matches(msg, Keys.Quit):
			return m.quit()
		case key.Matches(msg, Keys.Escape):
			m.Mode = MainView
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m.quit()

	case key.Matches(msg, Keys.Up):
		m.Library.CycleSelectedProject(domain.Up)

	case key.Matches(msg, Keys.Down):
		m.Library.CycleSelectedProject(domain.Down)

	case key.Matches(msg, Keys.Advance):
		m.Library.CycleSelectedProjectStatus(domain.Up)

	case key.Matches(msg, Keys.Regress):
		m.Library.CycleSelectedProjectStatus(domain.Down)

	case key.Matches(msg, Keys.Add):
		m.Mode = AddingProject
		cmd := m.Form.Show()
		return m, cmd

	case key.Matches(msg, Keys.Delete):
		m.Mode = DeletingProject
	}

	return m, nil
}

// handleFormKey routes keys to the add-project form
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Interrupt) {
		m.Form.Hide()
		return m.quit()
	}

	var cmd tea.Cmd
	var submitted bool
	m.Form, cmd, submitted = m.Form.Update(msg)

	if submitted {
		project := m.Form.Project()
		if err := m.Library.AddProject(project); err != nil {
			m.Form.SetError(err.Error())
			return m, nil
		}
		m.logger.Info("project added", "name", project.Name)
		m.Form.Hide()
		m.Mode = MainView
		m.StatusMsg = fmt.Sprintf("Added %q", project.Name)
		return m, ClearStatusCmd(statusTimeout)
	}

	if !m.Form.IsVisible() {
		m.Mode = MainView
	}
	return m, cmd
}

// quit leaves the program; the caller saves the library afterwards
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Mode = Exiting
	m.logger.Debug("exit requested", "projects", m.Library.Len())
	return m, tea.Quit
}
