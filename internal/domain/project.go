package domain

import (
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project is one tracked project. It has no identity beyond its
// position in a library.
type Project struct {
	Name        string
	Description string
	Status      Status
}

// NewProject creates a project in the Idea status.
func NewProject(name, description string) Project {
	return Project{
		Name:        name,
		Description: description,
		Status:      StatusIdea,
	}
}

// DisplayName is the name on a single line, with newlines, tabs and
// other control characters shown as spaces.
func (p Project) DisplayName() string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, p.Name)
}

// Validate checks presence of the name and that the status is known.
// Description is free-form and may be empty.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&p.Status, validation.Required, validation.In(
			StatusIdea, StatusInProgress, StatusPaused, StatusFinished,
		)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
