package library

import "github.com/mmcdole/projlib/internal/domain"

// ListPercent is the share of the width given to the list pane.
// The detail pane takes the rest.
const ListPercent = 30

// View is a render-ready projection of a library for one frame.
type View struct {
	Width  int
	Height int
	List   ListPane
	Detail DetailPane
}

// ListPane holds one entry per project in display order.
type ListPane struct {
	Width   int
	Entries []Entry
}

// Entry is a single line of the list pane. Name is already flattened
// to one line.
type Entry struct {
	Glyph    string
	Name     string
	Status   domain.Status
	Selected bool
}

// Text is the glyph-prefixed line, e.g. "! Website".
func (e Entry) Text() string {
	return e.Glyph + " " + e.Name
}

// DetailPane describes the selected project. Project is nil when the
// library is empty and the pane renders as an empty box.
type DetailPane struct {
	Width   int
	Project *domain.Project
}

// Lines returns the detail body: name, status label, a description
// heading and the description text.
func (d DetailPane) Lines() []string {
	if d.Project == nil {
		return nil
	}
	return []string{
		"Project Name: " + d.Project.Name,
		"Status: " + d.Project.Status.Label(),
		"Description:",
		d.Project.Description,
	}
}

// Render projects the library into a two-pane view sized to the given
// area. It does not modify the library.
func (l *Library) Render(width, height int) View {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	listWidth := width * ListPercent / 100

	v := View{
		Width:  width,
		Height: height,
		List: ListPane{
			Width:   listWidth,
			Entries: make([]Entry, 0, len(l.projects)),
		},
		Detail: DetailPane{Width: width - listWidth},
	}

	for i, p := range l.projects {
		v.List.Entries = append(v.List.Entries, Entry{
			Glyph:    p.Status.Glyph(),
			Name:     p.DisplayName(),
			Status:   p.Status,
			Selected: i == l.selected,
		})
	}

	if p, ok := l.Selected(); ok {
		v.Detail.Project = &p
	}
	return v
}
