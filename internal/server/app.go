// Package server wires the stand-in LLMPID API: in-memory repositories,
// services, the seeded operator account and the HTTP listener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/llmpid-console/internal/logging"
	"github.com/dmitrijs2005/llmpid-console/internal/server/api"
	"github.com/dmitrijs2005/llmpid-console/internal/server/config"
	"github.com/dmitrijs2005/llmpid-console/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/llmpid-console/internal/server/services"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *api.HTTPServer
}

// NewApp builds the services on a fresh in-memory store and seeds the
// operator account from c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rm := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(rm, c)
	if err := us.EnsureAdmin(ctx, c.AdminUsername, c.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	cs := services.NewClassificationService(rm)
	ss := services.NewSystemService(rm)

	s := api.NewHTTPServer(c.EndpointAddr, logger, us, cs, ss)

	return &App{config: c, logger: logger, server: s}, nil
}

// Handler exposes the HTTP handler without a listener.
func (app *App) Handler() http.Handler { return app.server.Handler() }

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "admin", app.config.AdminUsername)

	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(ctx)
	})

	return g.Wait()
}
