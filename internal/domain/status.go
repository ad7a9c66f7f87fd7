package domain

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status is the lifecycle stage of a project.
// The zero value is not a valid status.
type Status string

const (
	StatusIdea       Status = "idea"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusFinished   Status = "finished"
)

// Direction selects which way a cycle moves.
type Direction int

const (
	// Up advances: Idea -> InProgress -> Finished -> Paused -> Idea.
	Up Direction = iota
	// Down is the inverse of Up.
	Down
)

// Statuses lists every valid status in forward cycle order.
var Statuses = []Status{StatusIdea, StatusInProgress, StatusFinished, StatusPaused}

// ParseStatus converts a document token into a Status.
func ParseStatus(token string) (Status, error) {
	s := Status(token)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, token)
	}
	return s, nil
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusIdea, StatusInProgress, StatusPaused, StatusFinished:
		return true
	}
	return false
}

// Cycle returns the neighbour of s in the given direction.
// An invalid status is returned unchanged.
func (s Status) Cycle(dir Direction) Status {
	if dir == Down {
		switch s {
		case StatusIdea:
			return StatusPaused
		case StatusInProgress:
			return StatusIdea
		case StatusFinished:
			return StatusInProgress
		case StatusPaused:
			return StatusFinished
		}
		return s
	}

	switch s {
	case StatusIdea:
		return StatusInProgress
	case StatusInProgress:
		return StatusFinished
	case StatusFinished:
		return StatusPaused
	case StatusPaused:
		return StatusIdea
	}
	return s
}

// Label is the human-readable name shown in the detail pane.
func (s Status) Label() string {
	switch s {
	case StatusIdea:
		return "Idea"
	case StatusInProgress:
		return "In Progress"
	case StatusPaused:
		return "Paused"
	case StatusFinished:
		return "Finished"
	}
	return string(s)
}

// Glyph is the single-character marker prefixed to list entries.
func (s Status) Glyph() string {
	switch s {
	case StatusIdea:
		return "!"
	case StatusInProgress:
		return "-"
	case StatusPaused:
		return "X"
	case StatusFinished:
		return "✔"
	}
	return "?"
}

// Color is the foreground color paired with the glyph.
func (s Status) Color() lipgloss.Color {
	switch s {
	case StatusInProgress:
		return lipgloss.Color("3") // yellow
	case StatusPaused:
		return lipgloss.Color("1") // red
	case StatusFinished:
		return lipgloss.Color("2") // green
	}
	return lipgloss.Color("7") // white
}

func (s Status) String() string {
	return s.Label()
}

// MarshalText writes the snake_case document token.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText rejects any token outside the four known statuses.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
