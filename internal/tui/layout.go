package tui

// Vertical layout: panes above a bordered one-line instruction bar
const (
	barBorder    = 2
	ChromeHeight = 1 + barBorder

	MinPaneHeight = 3
)

// paneHeight returns the height available to the two panes
func (m Model) paneHeight() int {
	return max(m.Height-ChromeHeight, MinPaneHeight)
}
