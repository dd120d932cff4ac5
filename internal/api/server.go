package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/database/postgres"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/api/handler"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/api/handler/router"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/scheduler"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/authenticating"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/reporting"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	conn *postgres.Connection,
	c cache.Cache,
	statusRepo repository.APIStatusRepository,
	reportingService reporting.Service,
	authenticator authenticating.Authenticator,
	syncService *scheduler.MGNREGASyncService,
) (*Server, error) {
	source := config.DataGov.Source

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Health(conn, c, statusRepo, source)...),
		router.WithRoutes(handler.Districts(reportingService)...),
		router.WithRoutes(handler.Compare(reportingService)...),
		router.WithRoutes(handler.Sync(syncService, statusRepo, source)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped with error")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server stopped")
	return nil
}
