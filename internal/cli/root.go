package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ircbar/internal/app"
	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/log"
)

// env is what every subcommand gets after the root pre-run.
type env struct {
	configPath string
	overrides  config.Config

	cfg    config.Config
	opts   *config.Options
	logger *zerolog.Logger
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "ircbar",
		Short:         "IRC status bar items and relay client queries",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&e.configPath, "config", "", "config file path")
	flags.StringVar(&e.overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&e.overrides.StatePath, "state", "", "state snapshot file")
	flags.StringVar(&e.overrides.Locale, "locale", "", "locale for item words")

	root.AddCommand(
		serveCmd(e),
		renderCmd(e),
		relayCmd(e),
		tokenCmd(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	// Config loading logs before the configured level is known.
	boot := log.NewWriter(cmd.ErrOrStderr(), "warn", false)

	cfg, opts, path, err := config.Load(boot, e.configPath)
	if err != nil {
		return err
	}
	cfg.UpdateFrom(e.overrides)

	e.cfg = cfg
	e.opts = opts
	e.logger = log.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel, false)
	e.logger.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}

// startEngine loads the state and runs an engine until ctx ends.
func (e *env) startEngine(ctx context.Context) (core.Engine, error) {
	snap, err := app.LoadState(e.cfg.StatePath, e.logger)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	eng, err := app.NewEngine(&e.cfg, e.opts, snap, e.logger)
	if err != nil {
		return nil, err
	}
	go eng.Run(ctx)
	return eng, nil
}
