package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/projlib/internal/tui/components"
	"github.com/mmcdole/projlib/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.Mode == Exiting {
		return ""
	}

	height := m.paneHeight()
	frame := m.Library.Render(m.Width, height)

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		components.ProjectList(frame.List, height),
		components.ProjectDetails(frame.Detail, height),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		panes,
		m.renderInstructionBar(),
	)

	switch m.Mode {
	case AddingProject:
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Form.View())
	case DeletingProject:
		view = m.renderDeletingNotice()
	}

	return view
}

// renderInstructionBar renders the bordered key hint line, replaced by
// the status message while one is shown
func (m Model) renderInstructionBar() string {
	width := max(m.Width-barBorder, 1)

	content := m.Help.ShortHelpView(Keys.bindingsFor(m.Mode))
	if m.StatusMsg != "" {
		content = styles.AccentStyle.Render(m.StatusMsg)
	}

	return styles.BarBorder.
		Width(width).
		Render(ansi.Truncate(content, width, "…"))
}

// renderDeletingNotice renders the deleting mode placeholder
func (m Model) renderDeletingNotice() string {
	notice := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Delete Project"),
		"Deleting projects is not supported yet.",
		"",
		styles.DimStyle.Render("esc back · q save & quit"),
	)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(notice))
}
