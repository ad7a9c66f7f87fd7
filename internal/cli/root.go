package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmcdole/projlib/internal/config"
	"github.com/mmcdole/projlib/internal/library"
	"github.com/mmcdole/projlib/internal/log"
	"github.com/mmcdole/projlib/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App carries the state shared by all commands of one invocation
type App struct {
	File       string
	ConfigFile string

	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
}

// NewRootCmd builds the projlib command tree
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&App{}, version)
}

func newRootCmd(app *App, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "projlib",
		Short:         "Terminal project tracker",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  projlib

  # Scriptable commands
  projlib list
  projlib add "CLI Tool" -d "Small terminal utility"

  # Inspect and roll back earlier saves
  projlib history
  projlib restore 12
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	// Cobra skips post-run hooks when RunE fails, so our commands close the
	// log themselves. This hook covers the built-in help commands.
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		app.teardown()
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.File, "file", "", "Path to the project document (overrides library.file)")
	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", "", "Path to a config file (default: ~/.config/projlib/config.yaml)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newRestoreCmd(app))

	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		if c.RunE != nil {
			c.RunE = app.closeLogAfter(c.RunE)
		}
	}

	return cmd
}

// setup loads configuration and opens the log file
func (app *App) setup(cmd *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlag("library.file", cmd.Root().PersistentFlags().Lookup("file")); err != nil {
		return err
	}

	cfg, err := config.Load(v, app.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.cfg = cfg

	logger, closer, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = log.DiscardLogger()
	}
	app.logger = logger
	app.logCloser = closer
	slog.SetDefault(logger)

	logger.Debug("config loaded", "library", cfg.Library.File, "history", cfg.History.File)
	return nil
}

// closeLogAfter runs fn and then closes the log, whether or not fn failed
func (app *App) closeLogAfter(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer app.teardown()
		return fn(cmd, args)
	}
}

func (app *App) teardown() {
	if app.logCloser != nil {
		app.logCloser.Close()
		app.logCloser = nil
	}
}

// openHistory opens the snapshot store. A store that cannot be opened,
// for example because another projlib holds the lock, degrades to
// memory-only history for this run.
func (app *App) openHistory() *store.HistoryStore {
	h, err := store.NewHistoryStore(app.cfg.History.File, app.cfg.History.Keep, app.logger)
	if err != nil {
		app.logger.Warn("history unavailable", "error", err, "file", app.cfg.History.File)
		h, _ = store.NewHistoryStore("", app.cfg.History.Keep, app.logger)
	}
	return h
}

// openLibrary writes an empty document on first run, then loads it with
// saves recorded into history
func (app *App) openLibrary(history *store.HistoryStore) (*library.Library, error) {
	path := app.cfg.Library.File

	created, err := library.Bootstrap(path)
	if err != nil {
		return nil, err
	}
	if created {
		app.logger.Info("created empty project document", "path", path)
	}

	lib, err := library.Load(path,
		library.WithObserver(history),
		library.WithLogger(app.logger),
	)
	if err != nil {
		app.logger.Error("failed to load projects", "error", err, "path", path)
		return nil, err
	}
	return lib, nil
}

func writeErr(cmd *cobra.Command, err error) error {
	var schemaErr *library.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid project document (%s)\n", schemaErr.Field)
	}
	return err
}
