package httpapi

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

func (s *Server) requireKey(header, expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get(header)
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			return s.writeError(c, fmt.Errorf("%w: missing or invalid %s", domain.ErrAuthentication, header))
		}
		return c.Next()
	}
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) healthDB(c *fiber.Ctx) error {
	if err := s.db.PingContext(c.UserContext()); err != nil {
		s.logger.Error("database health check failed", "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false, "error": "database unavailable"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) receiveWebhook(c *fiber.Ctx) error {
	d := domain.WebhookDelivery{
		Body:        bytes.Clone(c.Body()),
		Signature:   c.Get("X-Shopify-Hmac-Sha256"),
		Topic:       c.Get("X-Shopify-Topic"),
		ShopDomain:  c.Get("X-Shopify-Shop-Domain"),
		WebhookID:   c.Get("X-Shopify-Webhook-Id"),
		EventID:     c.Get("X-Shopify-Event-Id"),
		APIVersion:  c.Get("X-Shopify-API-Version"),
		TriggeredAt: c.Get("X-Shopify-Triggered-At"),
	}

	result, err := s.intake.Receive(c.UserContext(), d)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "duplicate": result.Duplicate})
}

type syncResponse struct {
	OK            bool     `json:"ok"`
	TenantKey     string   `json:"tenantKey"`
	RunID         int64    `json:"runId"`
	ProductsCount int      `json:"productsCount"`
	Bytes         int      `json:"bytes"`
	Warnings      []string `json:"warnings"`
	DurationMS    int64    `json:"durationMs"`
}

func (s *Server) syncTenant(c *fiber.Ctx) error {
	result, err := s.syncer.SyncTenant(c.UserContext(), c.Query("shop"))
	if err != nil {
		return s.writeError(c, err)
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return c.JSON(syncResponse{
		OK:            true,
		TenantKey:     result.TenantKey,
		RunID:         result.RunID,
		ProductsCount: result.ProductsCount,
		Bytes:         result.Bytes,
		Warnings:      warnings,
		DurationMS:    result.Duration.Milliseconds(),
	})
}

type batchItem struct {
	TenantKey     string `json:"tenantKey"`
	Outcome       string `json:"outcome"`
	RunID         int64  `json:"runId,omitempty"`
	ProductsCount int    `json:"productsCount"`
	Error         string `json:"error,omitempty"`
}

type batchResponse struct {
	OK        bool        `json:"ok"`
	Processed int         `json:"processed"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	Results   []batchItem `json:"results"`
}

func (s *Server) syncBatch(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return s.writeError(c, fmt.Errorf("%w: limit must be a positive integer", domain.ErrValidation))
		}
		limit = n
	}

	stats, err := s.syncer.SyncBatch(c.UserContext(), limit)
	if err != nil {
		return s.writeError(c, err)
	}

	resp := batchResponse{
		OK:        true,
		Processed: stats.Processed,
		Skipped:   stats.Skipped,
		Failed:    stats.Failed,
		Results:   make([]batchItem, 0, len(stats.Items)),
	}
	for _, item := range stats.Items {
		resp.Results = append(resp.Results, batchItem{
			TenantKey:     item.TenantKey,
			Outcome:       string(item.Outcome),
			RunID:         item.RunID,
			ProductsCount: item.ProductsCount,
			Error:         item.Error,
		})
	}

	return c.JSON(resp)
}

type eventRow struct {
	ID             int64      `json:"id"`
	IdempotencyKey string     `json:"idempotencyKey"`
	Topic          string     `json:"topic"`
	ShopDomain     string     `json:"shopDomain"`
	Status         string     `json:"status"`
	ReceivedAt     time.Time  `json:"receivedAt"`
	ProcessedAt    *time.Time `json:"processedAt"`
}

func (s *Server) recentWebhooks(c *fiber.Ctx) error {
	events, err := s.intake.Recent(c.UserContext(), c.Query("shop"))
	if err != nil {
		return s.writeError(c, err)
	}

	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow{
			ID:             e.ID,
			IdempotencyKey: e.IdempotencyKey,
			Topic:          e.Topic,
			ShopDomain:     e.ShopDomain,
			Status:         string(e.Status),
			ReceivedAt:     e.ReceivedAt,
			ProcessedAt:    e.ProcessedAt,
		})
	}

	return c.JSON(fiber.Map{"ok": true, "rows": rows})
}

func (s *Server) registerWebhooks(c *fiber.Ctx) error {
	reg, err := s.registrar.Register(c.UserContext(), c.Query("shop"))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"shopDomain": reg.ShopDomain,
		"address":    reg.Address,
		"already":    reg.Already,
		"created":    reg.Created,
	})
}

func (s *Server) exportCSV(c *fiber.Ctx) error {
	snap, err := s.syncer.Snapshot(c.UserContext(), c.Query("shop"))
	if err != nil {
		return s.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set("X-Generated-At", snap.GeneratedAt.UTC().Format(time.RFC3339))
	return c.Send(snap.CSV)
}
