package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/projlib/internal/domain"
	"github.com/mmcdole/projlib/internal/library"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func libraryWith(t *testing.T, names ...string) *library.Library {
	t.Helper()
	lib := library.New(t.TempDir() + "/projects.toml")
	for _, name := range names {
		require.NoError(t, lib.AddProject(domain.NewProject(name, "")))
	}
	return lib
}

func TestProjectList_Ascii(t *testing.T) {
	withProfile(t, termenv.Ascii)
	lib := libraryWith(t, "Website", "A project with a very long name indeed")

	v := lib.Render(100, 10)
	out := ProjectList(v.List, 10)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Contains(t, lines[1], ListTitle)
	assert.Contains(t, lines[2], "! Website")
	assert.Contains(t, lines[3], "! A project with a very")
	assert.Contains(t, lines[3], "…")
	assert.NotContains(t, out, "indeed")
}

func TestProjectList_HighlightsSelection(t *testing.T) {
	withProfile(t, termenv.ANSI256)
	lib := libraryWith(t, "Website", "CLI Tool")
	lib.CycleSelectedProject(domain.Down)
	lib.CycleSelectedProjectStatus(domain.Up)

	lines := strings.Split(ProjectList(lib.Render(100, 10).List, 10), "\n")
	assert.NotContains(t, lines[2], "44m", "unselected entry has no background")
	assert.Contains(t, lines[3], "44m", "selected entry is on blue")
	assert.Contains(t, lines[3], "33", "in progress is yellow")
}

func TestProjectList_ScrollsToSelection(t *testing.T) {
	withProfile(t, termenv.Ascii)
	lib := libraryWith(t, "p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7")
	lib.CycleSelectedProject(domain.Up) // last

	out := ProjectList(lib.Render(100, 6).List, 6)
	assert.Contains(t, out, "p7")
	assert.NotContains(t, out, "p0")
}

func TestProjectList_MultiLineNamesKeepHeight(t *testing.T) {
	withProfile(t, termenv.Ascii)
	lib := libraryWith(t, "a\nb\nc\nd", "second", "third")
	lib.CycleSelectedProject(domain.Up) // last

	out := ProjectList(lib.Render(60, 6).List, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], "! a b c d")
	assert.Contains(t, lines[4], "! third")
}

func TestProjectDetails(t *testing.T) {
	withProfile(t, termenv.Ascii)

	empty := ProjectDetails(libraryWith(t).Render(100, 8).Detail, 8)
	assert.Contains(t, empty, DetailTitle)
	assert.NotContains(t, empty, "Project Name:")
	assert.Len(t, strings.Split(empty, "\n"), 8)

	lib := library.New(t.TempDir() + "/projects.toml")
	require.NoError(t, lib.AddProject(domain.Project{
		Name:        "Garden",
		Description: "Raised beds\nand a trellis",
		Status:      domain.StatusFinished,
	}))
	out := ProjectDetails(lib.Render(100, 12).Detail, 12)
	for _, want := range []string{"Project Name: Garden", "Status: Finished", "Description:", "Raised beds", "and a trellis"} {
		assert.Contains(t, out, want)
	}
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 70, lipgloss.Width(line))
	}
}

func TestProjectDetails_ClipsToHeight(t *testing.T) {
	withProfile(t, termenv.Ascii)
	lib := library.New(t.TempDir() + "/projects.toml")
	require.NoError(t, lib.AddProject(domain.NewProject("Long", strings.Repeat("line\n", 40))))

	out := ProjectDetails(lib.Render(100, 10).Detail, 10)
	assert.Len(t, strings.Split(out, "\n"), 10)
}
