package library

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mmcdole/projlib/internal/domain"
)

// document is the on-disk shape. Selection and path are never stored.
type document struct {
	Projects []projectRecord `toml:"projects"`
}

type projectRecord struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Status      domain.Status `toml:"status"`
}

// Encode serializes projects into a TOML document.
func Encode(projects []domain.Project) ([]byte, error) {
	doc := document{Projects: make([]projectRecord, 0, len(projects))}
	for _, p := range projects {
		doc.Projects = append(doc.Projects, projectRecord{
			Name:        p.Name,
			Description: p.Description,
			Status:      p.Status,
		})
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a TOML document into projects. Shape violations are
// reported as *SchemaError; syntax errors are returned as-is.
func Decode(data []byte) ([]domain.Project, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, &SchemaError{Err: err}
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for i, rec := range doc.Projects {
		p := domain.Project{Name: rec.Name, Description: rec.Description, Status: rec.Status}
		if err := p.Validate(); err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("projects[%d]", i), Err: err}
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Bootstrap writes an empty library to path when no document exists,
// creating parent directories as needed. It reports whether it wrote.
func Bootstrap(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, &PersistenceError{Op: "bootstrap", Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, &PersistenceError{Op: "bootstrap", Path: path, Err: err}
	}
	if err := New(path).Save(); err != nil {
		return false, err
	}
	return true, nil
}

// WriteDocument overwrites path with raw document bytes after checking
// that they decode. Used to restore snapshots.
func WriteDocument(path string, data []byte) error {
	if _, err := Decode(data); err != nil {
		return &PersistenceError{Op: "restore", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistenceError{Op: "restore", Path: path, Err: err}
	}
	return nil
}
