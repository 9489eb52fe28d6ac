// Package cli implements the interactive shell over the session
// controller: login, registration, profile edits, order history and
// checkout.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/cache"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/dmitrijs2005/shopkeeper/internal/client/services"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config     *config.Config
	controller *services.SessionController
	cache      *cache.Cache
	client     *remote.GRPCClient
	logger     logging.Logger
	Mode       Mode
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := cache.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing cache database: %w", err)
	}

	store := cache.New(cache.NewSQLiteStore(db))

	client, err := remote.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("error initializing api client: %w", err)
	}

	resolver := services.NewCredentialResolver(client, client, store,
		c.LocalOnly, c.AdminEmail, c.AdminPasswordHash, logger)
	migrator := services.NewAccountMigrator(client, client, store, logger)
	reconciler := services.NewOrderReconciler(client, logger)
	controller := services.NewSessionController(resolver, migrator, reconciler,
		client, client, store, c.LocalOnly, logger)

	return &App{
		config:     c,
		controller: controller,
		cache:      store,
		client:     client,
		logger:     logger,
		Mode:       ModeOffline,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the backend and flips
// the displayed mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if err := a.controller.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
	}
	if s := a.controller.Current(); s.IsAuthenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", s.Account.Email)
	}

	if !a.config.LocalOnly {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	a.Root(ctx)
}
