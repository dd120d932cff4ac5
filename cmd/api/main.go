package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/database/postgres"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/integrator/datagov/datagovclient"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/api"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/scheduler"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/authenticating"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/reporting"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	districtRepo := repository.NewDistrictRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	statusRepo := repository.NewAPIStatusRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	c := newCache(ctx, cfg.Redis)

	authenticator := authenticating.NewService(userRepo, cfg)
	reportingService := reporting.NewService(districtRepo, performanceRepo, c)

	feedClient := datagovclient.NewClient(cfg)
	syncer := syncing.NewService(cfg, feedClient, districtRepo, performanceRepo, statusRepo)

	syncService := scheduler.NewMGNREGASyncService(syncer, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start MGNREGA sync scheduler")
	} else {
		logrus.Info("MGNREGA sync scheduler started")
	}

	server, err := api.New(
		cfg,
		pgConn,
		c,
		statusRepo,
		reportingService,
		authenticator,
		syncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}

// newCache connects to Redis when an address is configured; otherwise the
// service runs with caching disabled.
func newCache(ctx context.Context, redisConfig config.Redis) cache.Cache {
	if redisConfig.Addr == "" {
		logrus.Info("Redis not configured, caching disabled")
		return cache.Disabled{}
	}

	c := cache.NewRedisCache(redisConfig)
	if err := c.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis unreachable, caching disabled")
		return cache.Disabled{}
	}

	logrus.Info("Redis connection established")
	return c
}
