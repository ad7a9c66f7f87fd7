package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/projlib/internal/library"
	"github.com/mmcdole/projlib/internal/tui/styles"
)

// Pane titles
const (
	ListTitle   = "Projects"
	DetailTitle = "Project Details"
)

// borderSize is the horizontal and vertical space taken by a pane border
const borderSize = 2

// ProjectList renders the list pane: a bordered box with one
// glyph-prefixed line per project. The list scrolls to keep the
// selected entry visible.
func ProjectList(pane library.ListPane, height int) string {
	innerWidth := max(pane.Width-borderSize, 1)
	innerHeight := max(height-borderSize, 1)
	rows := max(innerHeight-1, 0) // title takes one row

	offset := 0
	for i, e := range pane.Entries {
		if e.Selected && i >= rows {
			offset = i - rows + 1
		}
	}

	lines := []string{styles.TitleStyle.Render(ansi.Truncate(ListTitle, innerWidth, ""))}
	for i := offset; i < len(pane.Entries) && i-offset < rows; i++ {
		e := pane.Entries[i]
		text := ansi.Truncate(e.Text(), innerWidth, "…")
		lines = append(lines, styles.ItemStyle(e.Status, e.Selected).Width(innerWidth).Render(text))
	}

	return styles.PaneBorder.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// ProjectDetails renders the detail pane for the selected project. With
// no selection it is an empty bordered box carrying only its title.
func ProjectDetails(pane library.DetailPane, height int) string {
	innerWidth := max(pane.Width-borderSize, 1)
	innerHeight := max(height-borderSize, 1)

	lines := []string{styles.TitleStyle.Render(ansi.Truncate(DetailTitle, innerWidth, ""))}
	for i, line := range pane.Lines() {
		style := lipgloss.NewStyle().Width(innerWidth)
		if i == 1 {
			style = style.Inherit(styles.StatusStyle(pane.Project.Status))
		}
		lines = append(lines, strings.Split(style.Render(line), "\n")...)
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return styles.PaneBorder.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}
