package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/state"
	transporthttp "github.com/vovakirdan/ircbar/internal/transport/http"
)

const engineQueueSize = 64

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	engine          core.Engine
	log             *zerolog.Logger
}

// LoadState reads the snapshot at path. A missing file yields an empty
// state so the server can start before any client state exists.
func LoadState(path string, logger *zerolog.Logger) (state.Snapshot, error) {
	if path == "" {
		return state.Empty(), nil
	}
	snap, err := state.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Str("path", path).Msg("state file not found, starting empty")
			return state.Empty(), nil
		}
		return state.Snapshot{}, err
	}
	logger.Info().
		Str("path", path).
		Int("servers", len(snap.Graph.Servers)).
		Int("buffers", len(snap.Graph.Buffers)).
		Int("relay_clients", snap.Relay.Count()).
		Msg("state loaded")
	return snap, nil
}

// NewEngine builds the engine for cfg over snap.
func NewEngine(cfg *config.Config, opts *config.Options, snap state.Snapshot, logger *zerolog.Logger) (core.Engine, error) {
	words := i18n.New(cfg.Locale)
	logger.Debug().Str("language", words.Language().String()).Msg("locale selected")
	return core.NewEngine(core.Deps{
		State:     snap,
		Options:   opts,
		Words:     words,
		Log:       logger,
		QueueSize: engineQueueSize,
	})
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, opts *config.Options, logger *zerolog.Logger) (*App, error) {
	snap, err := LoadState(cfg.StatePath, logger)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	eng, err := NewEngine(cfg, opts, snap, logger)
	if err != nil {
		return nil, fmt.Errorf("init engine: %w", err)
	}

	if cfg.APISecret == "" {
		logger.Warn().Msg("api_secret is empty, API is served without authentication")
	}
	server := transporthttp.NewServer(eng, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		engine:          eng,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	go a.engine.Run(loopCtx)

	go func() {
		a.log.Info().Str("addr", a.server.Addr).Msg("http server listening")
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
