package cli

import (
	"fmt"
	"strings"

	"github.com/mmcdole/projlib/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := app.openHistory()
			defer history.Close()

			lib, err := app.openLibrary(history)
			if err != nil {
				return writeErr(cmd, err)
			}

			out := cmd.OutOrStdout()
			if lib.Len() == 0 {
				fmt.Fprintln(out, "No projects yet.")
				return nil
			}
			for _, p := range lib.Projects() {
				fmt.Fprintf(out, "%s %s (%s)\n", p.Status.Glyph(), p.DisplayName(), p.Status.Label())
			}
			return nil
		},
	}
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a project with status Idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history := app.openHistory()
			defer history.Close()

			lib, err := app.openLibrary(history)
			if err != nil {
				return writeErr(cmd, err)
			}

			project := domain.NewProject(strings.TrimSpace(args[0]), description)
			if err := lib.AddProject(project); err != nil {
				return writeErr(cmd, err)
			}
			if err := lib.Save(); err != nil {
				return writeErr(cmd, err)
			}

			app.logger.Info("project added", "name", project.Name, "path", lib.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", project.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	return cmd
}
