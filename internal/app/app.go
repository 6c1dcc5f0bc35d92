package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/tour-of-heroes/internal/config"
	"github.com/vovakirdan/tour-of-heroes/internal/core"
	"github.com/vovakirdan/tour-of-heroes/internal/store"
	"github.com/vovakirdan/tour-of-heroes/internal/store/sqlite"
	transporthttp "github.com/vovakirdan/tour-of-heroes/internal/transport/http"
)

// App wires together storage and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	store           store.Store
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	st, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	logger.Info().Str("db_path", cfg.DatabasePath).Msg("database initialized")

	if cfg.SeedHeroes {
		seeded, err := SeedIfEmpty(ctx, st)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("seed heroes: %w", err)
		}
		if seeded > 0 {
			logger.Info().Int("hero_count", seeded).Msg("seeded default heroes")
		}
	}

	server := transporthttp.NewServer(st, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           st,
		log:             logger,
	}, nil
}

// SeedIfEmpty inserts the default roster into an empty store and returns how many heroes were added.
func SeedIfEmpty(ctx context.Context, st store.HeroStore) (int, error) {
	n, err := st.CountHeroes(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	roster := core.DefaultRoster()
	heroes := make([]store.Hero, 0, len(roster))
	for _, h := range roster {
		heroes = append(heroes, store.Hero{ID: h.ID, Name: h.Name})
	}
	if err := st.SeedHeroes(ctx, heroes); err != nil {
		return 0, err
	}
	return len(heroes), nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() stdhttp.Handler {
	return a.server.Handler
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

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
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// Close releases resources without running the server.
func (a *App) Close() {
	a.cleanup()
}

// cleanup closes database and other resources.
func (a *App) cleanup() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close store")
		} else {
			a.log.Info().Msg("store closed")
		}
		a.store = nil
	}
}
