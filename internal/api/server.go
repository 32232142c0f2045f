package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/api/handler"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/api/handler/router"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/internal/usecases/authenticating"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/metrics"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Dependencies groups what the HTTP surface needs from the rest of the app.
type Dependencies struct {
	Authenticator authenticating.Authenticator
	Imports       handler.ImportRunner
	Reporting     handler.BudgetSummarizer
	Database      handler.Pinger
	Metrics       *metrics.Metrics
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil {
		return nil, errors.New("api: authenticator is required")
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(deps.Database)...),
		router.WithRoutes(handler.Metrics(deps.Metrics)...),
	}
	if deps.Imports != nil {
		routes = append(routes, router.WithRoutes(handler.BudgetImports(deps.Imports, cfg)...))
	}
	if deps.Reporting != nil {
		routes = append(routes, router.WithRoutes(handler.BudgetSummary(deps.Reporting)...))
	}

	rt := router.New(routes...)
	logrus.WithField("routes", rt.Routes()).Debug("routes registered")

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(deps.Metrics),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until SIGINT, SIGTERM or ctx cancellation, then shuts down gracefully.
func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	case err := <-errCh:
		logrus.WithError(err).Error("server stopped unexpectedly")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
