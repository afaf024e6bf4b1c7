package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/archive"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/config"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/httpapi"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/publisher"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/scheduler"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/service"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/source/shopify"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/storage/postgres"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	runMigrations := flag.Bool("migrate", false, "apply pending migrations before starting")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if *runMigrations {
		if err := migrateUp(cfg.Database.URL(), logger); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	// At most Concurrency runs are in flight, each pinning a lock connection
	// and using one more; the rest is headroom for webhook intake.
	db.SetMaxOpenConns(max(cfg.Sync.Concurrency*2+4, 10))
	logger.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	var archiver service.Archiver
	if cfg.Archive.Enabled() {
		s3Archive, err := archive.NewS3(ctx, archive.Config{
			Bucket:          cfg.Archive.Bucket,
			Prefix:          cfg.Archive.Prefix,
			Region:          cfg.Archive.Region,
			EndpointURL:     cfg.Archive.EndpointURL,
			AccessKeyID:     cfg.Archive.AccessKeyID,
			SecretAccessKey: cfg.Archive.SecretAccessKey,
		}, logger)
		if err != nil {
			logger.Error("failed to init snapshot archive", "error", err)
			os.Exit(1)
		}
		archiver = s3Archive
	}

	// Initialize stores
	tenantStore := postgres.NewTenantStore(db)
	eventStore := postgres.NewWebhookEventStore(db)
	dirtyStore := postgres.NewDirtyStore(db)
	entryStore := postgres.NewCatalogEntryStore(db)
	txManager := postgres.NewTransactionManager(db)
	stores := service.Stores{
		Dirty:     dirtyStore,
		Runs:      postgres.NewSyncRunStore(db),
		Snapshots: postgres.NewSnapshotStore(db),
		Entries:   entryStore,
		Events:    eventStore,
	}

	shopifySource := shopify.New(shopify.Config{
		APIVersion:           cfg.Shopify.APIVersion,
		BaseURL:              cfg.Shopify.BaseURL,
		PageSize:             cfg.Shopify.PageSize,
		CollectionsBatchSize: cfg.Shopify.CollectionsBatchSize,
		RequestsPerSecond:    cfg.Shopify.RequestsPerSecond,
		Timeout:              cfg.Shopify.Timeout,
		MaxAttempts:          cfg.Shopify.Retry.MaxAttempts,
		InitialBackoff:       cfg.Shopify.Retry.InitialBackoff,
		MaxBackoff:           cfg.Shopify.Retry.MaxBackoff,
	}, logger)

	resolver := service.NewCredentialResolver(tenantStore)
	intake := service.NewIntakeService(cfg.Shopify.WebhookSecret, eventStore, dirtyStore, entryStore, txManager, logger)
	syncService := service.NewSyncService(
		resolver,
		shopifySource,
		stores,
		postgres.NewAdvisoryLocker(db, logger),
		txManager,
		pub,
		archiver,
		logger,
		cfg.Sync,
	)
	webhooks := service.NewWebhookService(resolver, shopifySource, cfg.Shopify.AppBaseURL, logger)

	server := httpapi.New(httpapi.Config{
		AdminKey:     cfg.Security.AdminKey,
		ExportKey:    cfg.Security.ExportKey,
		BodyLimit:    cfg.HTTP.MaxBodyBytes,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, intake, syncService, webhooks, db, logger)

	sched := scheduler.NewScheduler(syncService, cfg.Sync, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Listen(cfg.HTTP.Addr)
	}()

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	logger.Info("starting catalog syncer",
		"addr", cfg.HTTP.Addr,
		"interval", cfg.Sync.Interval,
		"batch_limit", cfg.Sync.BatchLimit,
		"publisher", pub != nil,
		"archive", archiver != nil,
	)

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		logger.Error("http server error", "error", err)
		exitCode = 1
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	<-schedDone

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func migrateUp(databaseURL string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
