package library

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mmcdole/projlib/internal/domain"
)

// SaveObserver is notified with the exact bytes written by Save.
type SaveObserver interface {
	OnSave(path string, document []byte)
}

// NoOpObserver discards save notifications.
type NoOpObserver struct{}

func (NoOpObserver) OnSave(string, []byte) {}

// Option configures a Library.
type Option func(*Library)

// WithObserver registers an observer for successful saves.
func WithObserver(obs SaveObserver) Option {
	return func(l *Library) {
		if obs != nil {
			l.observer = obs
		}
	}
}

// WithLogger sets the logger used for persistence events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Library is the ordered collection of projects plus the current
// selection and the document path it was bound to.
//
// All mutation goes through methods so that selected stays in
// [0, len(projects)) whenever projects is non-empty.
type Library struct {
	projects []domain.Project
	selected int
	path     string

	observer SaveObserver
	logger   *slog.Logger
}

// New returns an empty library bound to path.
func New(path string, opts ...Option) *Library {
	l := &Library{
		projects: []domain.Project{},
		path:     path,
		observer: NoOpObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes the document at path. Selection starts at 0.
func Load(path string, opts ...Option) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	projects, err := Decode(data)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	l := New(path, opts...)
	l.projects = projects
	l.logger.Debug("loaded library", "path", path, "count", len(projects))
	return l, nil
}

// Save overwrites the bound document with the current projects.
// The write is not atomic.
func (l *Library) Save() error {
	data, err := Encode(l.projects)
	if err != nil {
		return &PersistenceError{Op: "save", Path: l.path, Err: err}
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return &PersistenceError{Op: "save", Path: l.path, Err: err}
	}
	l.logger.Debug("saved library", "path", l.path, "count", len(l.projects))
	l.observer.OnSave(l.path, data)
	return nil
}

// Path returns the document path bound at construction.
func (l *Library) Path() string {
	return l.path
}

// Len returns the number of projects.
func (l *Library) Len() int {
	return len(l.projects)
}

// Projects returns a copy of the projects in display order.
func (l *Library) Projects() []domain.Project {
	out := make([]domain.Project, len(l.projects))
	copy(out, l.projects)
	return out
}

// SelectedIndex returns the selection and whether it is active.
func (l *Library) SelectedIndex() (int, bool) {
	if len(l.projects) == 0 {
		return 0, false
	}
	return l.selected, true
}

// Selected returns the selected project, if any.
func (l *Library) Selected() (domain.Project, bool) {
	if l.selected < 0 || l.selected >= len(l.projects) {
		return domain.Project{}, false
	}
	return l.projects[l.selected], true
}

// AddProject appends p. Selection is unchanged unless the library was
// empty, in which case p becomes selected.
func (l *Library) AddProject(p domain.Project) error {
	if p.Status == "" {
		p.Status = domain.StatusIdea
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	l.projects = append(l.projects, p)
	if len(l.projects) == 1 {
		l.selected = 0
	}
	return nil
}

// CycleSelectedProject moves the selection one step with wraparound.
func (l *Library) CycleSelectedProject(dir domain.Direction) {
	n := len(l.projects)
	if n == 0 {
		return
	}
	if l.selected < 0 || l.selected >= n {
		l.selected = 0
	}

	switch dir {
	case domain.Down:
		if l.selected >= n-1 {
			l.selected = 0
		} else {
			l.selected++
		}
	case domain.Up:
		if l.selected == 0 {
			l.selected = n - 1
		} else {
			l.selected--
		}
	}
}

// CycleSelectedProjectStatus cycles the selected project's status.
func (l *Library) CycleSelectedProjectStatus(dir domain.Direction) {
	if l.selected < 0 || l.selected >= len(l.projects) {
		return
	}
	p := &l.projects[l.selected]
	p.Status = p.Status.Cycle(dir)
}
