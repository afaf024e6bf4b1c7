// Package httpapi exposes webhook intake, admin operations, the feed export
// and health checks over HTTP.
package httpapi

//go:generate mockgen -source=server.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const (
	headerAdminKey  = "X-Admin-Key"
	headerExportKey = "X-Export-Key"
)

type Intake interface {
	Receive(ctx context.Context, d domain.WebhookDelivery) (*domain.IntakeResult, error)
	Recent(ctx context.Context, shop string) ([]domain.WebhookEvent, error)
}

type Syncer interface {
	SyncTenant(ctx context.Context, input string) (*domain.SyncResult, error)
	SyncBatch(ctx context.Context, limit int) (*domain.BatchStats, error)
	Snapshot(ctx context.Context, input string) (*domain.Snapshot, error)
}

type Registrar interface {
	Register(ctx context.Context, input string) (*domain.Registration, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Config struct {
	AdminKey     string
	ExportKey    string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Server struct {
	app       *fiber.App
	intake    Intake
	syncer    Syncer
	registrar Registrar
	db        Pinger
	cfg       Config
	logger    *slog.Logger
}

func New(cfg Config, intake Intake, syncer Syncer, registrar Registrar, db Pinger, logger *slog.Logger) *Server {
	s := &Server{
		intake:    intake,
		syncer:    syncer,
		registrar: registrar,
		db:        db,
		cfg:       cfg,
		logger:    logger.With("component", "http"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "shopify-goodbarber-sync",
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})

	s.app.Use(recover.New(), requestid.New(requestid.Config{Generator: uuid.NewString}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)
	s.app.Get("/health/db", s.healthDB)

	s.app.Post("/webhooks/shopify", s.receiveWebhook)

	admin := s.app.Group("/admin", s.requireKey(headerAdminKey, s.cfg.AdminKey))
	admin.Post("/sync", s.syncTenant)
	admin.Post("/sync/batch", s.syncBatch)
	admin.Get("/webhooks/recent", s.recentWebhooks)
	admin.Post("/webhooks/register", s.registerWebhooks)

	s.app.Get("/exports/goodbarber/products.csv", s.requireKey(headerExportKey, s.cfg.ExportKey), s.exportCSV)
}

// App exposes the router, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
