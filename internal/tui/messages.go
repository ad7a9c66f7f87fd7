package tui

// ClearStatusMsg clears the instruction bar status message
type ClearStatusMsg struct{}
