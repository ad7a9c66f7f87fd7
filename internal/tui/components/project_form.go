package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/projlib/internal/domain"
	"github.com/mmcdole/projlib/internal/tui/styles"
)

const formWidth = 48

// ProjectForm captures the name and description of a new project
type ProjectForm struct {
	visible     bool
	focus       int // 0 = name, 1 = description
	err         string
	name        textinput.Model
	description textinput.Model
}

// NewProjectForm creates a hidden project form
func NewProjectForm() ProjectForm {
	name := textinput.New()
	name.Placeholder = "Project name..."
	name.CharLimit = 80
	name.Width = formWidth - 2
	name.Prompt = ""
	name.PlaceholderStyle = styles.DimStyle

	desc := textinput.New()
	desc.Placeholder = "Description (optional)..."
	desc.CharLimit = 500
	desc.Width = formWidth - 2
	desc.Prompt = ""
	desc.PlaceholderStyle = styles.DimStyle

	return ProjectForm{
		name:        name,
		description: desc,
	}
}

// Show clears the form and focuses the name field
func (f *ProjectForm) Show() tea.Cmd {
	f.visible = true
	f.err = ""
	f.focus = 0
	f.name.SetValue("")
	f.description.SetValue("")
	f.description.Blur()
	return f.name.Focus()
}

// Hide dismisses the form
func (f *ProjectForm) Hide() {
	f.visible = false
	f.name.Blur()
	f.description.Blur()
}

// IsVisible returns whether the form is shown
func (f ProjectForm) IsVisible() bool {
	return f.visible
}

// SetError shows an inline error under the inputs
func (f *ProjectForm) SetError(msg string) {
	f.err = msg
}

// Err returns the inline error, if any
func (f ProjectForm) Err() string {
	return f.err
}

// Project builds the project described by the current input
func (f ProjectForm) Project() domain.Project {
	return domain.NewProject(strings.TrimSpace(f.name.Value()), f.description.Value())
}

// Update handles input events, returns (form, cmd, submitted)
func (f ProjectForm) Update(msg tea.Msg) (ProjectForm, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if strings.TrimSpace(f.name.Value()) == "" {
				f.err = "Name is required"
				return f, nil, false
			}
			return f, nil, true
		case "esc":
			f.Hide()
			return f, nil, false
		case "tab", "shift+tab":
			cmd := f.toggleFocus()
			return f, cmd, false
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd, false
}

func (f *ProjectForm) toggleFocus() tea.Cmd {
	if f.focus == 0 {
		f.focus = 1
		f.name.Blur()
		return f.description.Focus()
	}
	f.focus = 0
	f.description.Blur()
	return f.name.Focus()
}

// View renders the form as a modal
func (f ProjectForm) View() string {
	if !f.visible {
		return ""
	}

	field := func(label string, input textinput.Model, focused bool) string {
		labelStyle := styles.DimStyle
		if focused {
			labelStyle = styles.AccentStyle
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(label),
			lipgloss.NewStyle().Width(formWidth).Render(input.View()),
		)
	}

	parts := []string{
		styles.ModalTitleStyle.Render("New Project"),
		field("Name", f.name, f.focus == 0),
		"",
		field("Description", f.description, f.focus == 1),
	}
	if f.err != "" {
		parts = append(parts, "", styles.ErrorStyle.Render(f.err))
	}

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
