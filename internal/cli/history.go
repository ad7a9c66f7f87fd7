package cli

import (
	"fmt"
	"strconv"

	"github.com/mmcdole/projlib/internal/library"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved snapshots of the project document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := app.openHistory()
			defer history.Close()

			snaps, err := history.List(app.cfg.Library.File)
			if err != nil {
				return writeErr(cmd, err)
			}

			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(out, "No snapshots recorded.")
				return nil
			}
			for _, s := range snaps {
				fmt.Fprintf(out, "%6d  %s  %d projects\n", s.ID, s.SavedAt.Local().Format(timeLayout), s.Projects)
			}
			return nil
		},
	}
	return cmd
}

func newRestoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore ID",
		Short: "Overwrite the project document with a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid snapshot id %q", args[0]))
			}

			history := app.openHistory()
			defer history.Close()

			path := app.cfg.Library.File
			snap, err := history.Get(path, id)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := library.WriteDocument(path, snap.Document); err != nil {
				return writeErr(cmd, err)
			}

			app.logger.Info("snapshot restored", "id", id, "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot %d (%d projects)\n", snap.ID, snap.Projects)
			return nil
		},
	}
	return cmd
}
