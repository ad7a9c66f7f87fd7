package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/projlib/internal/domain"
)

// Color palette
var (
	Blue    = lipgloss.Color("4")
	DimGray = lipgloss.Color("8")
	White   = lipgloss.Color("15")
	Red     = lipgloss.Color("1")
	Accent  = lipgloss.Color("6")
)

// Borders
var (
	PaneBorder = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(White)

	BarBorder = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(White)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Background(Blue)

	NormalItemStyle = lipgloss.NewStyle()
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// StatusStyle returns the foreground style for a project status.
func StatusStyle(s domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Color())
}

// ItemStyle returns the style for a list entry. Selected entries keep
// their status color on a highlighted background.
func ItemStyle(s domain.Status, selected bool) lipgloss.Style {
	if selected {
		return SelectedItemStyle.Foreground(s.Color())
	}
	return NormalItemStyle.Foreground(s.Color())
}
