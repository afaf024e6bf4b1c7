package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const recentEventsLimit = 20

// IntakeService authenticates and records inbound webhook deliveries. It
// does no catalog work beyond marking the tenant dirty.
type IntakeService struct {
	secret    []byte
	events    WebhookEventStore
	dirty     DirtyStore
	entries   CatalogEntryStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewIntakeService(
	secret string,
	events WebhookEventStore,
	dirty DirtyStore,
	entries CatalogEntryStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *IntakeService {
	return &IntakeService{
		secret:    []byte(secret),
		events:    events,
		dirty:     dirty,
		entries:   entries,
		txManager: txManager,
		logger:    logger.With("component", "intake"),
	}
}

// VerifySignature reports whether signature is the base64 HMAC-SHA256 of
// body under secret. The comparison is constant time.
func VerifySignature(secret, body []byte, signature string) bool {
	signature = strings.TrimSpace(signature)
	if len(secret) == 0 || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Receive records d exactly once per idempotency key. Redeliveries succeed
// with Duplicate set and write nothing.
func (s *IntakeService) Receive(ctx context.Context, d domain.WebhookDelivery) (*domain.IntakeResult, error) {
	if !VerifySignature(s.secret, d.Body, d.Signature) {
		return nil, fmt.Errorf("%w: invalid webhook signature", domain.ErrAuthentication)
	}

	shop := strings.ToLower(strings.TrimSpace(d.ShopDomain))
	if d.Topic == "" || shop == "" || d.WebhookID == "" {
		return nil, fmt.Errorf("%w: missing topic, shop domain or webhook id", domain.ErrValidation)
	}

	if !json.Valid(d.Body) {
		return nil, fmt.Errorf("%w: webhook body is not valid JSON", domain.ErrValidation)
	}

	evt := &domain.WebhookEvent{
		IdempotencyKey: d.IdempotencyKey(),
		WebhookID:      d.WebhookID,
		Topic:          d.Topic,
		ShopDomain:     shop,
		Payload:        json.RawMessage(d.Body),
		Status:         domain.EventPending,
	}
	if d.EventID != "" {
		evt.EventID = &d.EventID
	}
	if d.APIVersion != "" {
		evt.APIVersion = &d.APIVersion
	}
	if t, err := time.Parse(time.RFC3339, d.TriggeredAt); err == nil {
		evt.TriggeredAt = &t
	}

	logger := s.logger.With("tenant", shop, "topic", d.Topic, "idempotency_key", evt.IdempotencyKey)

	var inserted bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		inserted, err = s.events.Insert(txCtx, evt)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		if !inserted {
			return nil
		}

		if err := s.dirty.Touch(txCtx, shop); err != nil {
			return fmt.Errorf("touch dirty marker: %w", err)
		}

		if d.Topic == domain.TopicProductsDelete {
			productID := deletedProductID(d.Body)
			if productID <= 0 {
				logger.Warn("delete notification without product id")
				return nil
			}
			if err := s.entries.Disable(txCtx, shop, productID); err != nil {
				return fmt.Errorf("disable catalog entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("record webhook", err)
	}

	if inserted {
		logger.Info("webhook recorded")
	} else {
		logger.Debug("duplicate webhook ignored")
	}

	return &domain.IntakeResult{TenantKey: shop, Duplicate: !inserted}, nil
}

// Recent lists the latest recorded events, optionally for one tenant.
func (s *IntakeService) Recent(ctx context.Context, shop string) ([]domain.WebhookEvent, error) {
	events, err := s.events.Recent(ctx, strings.ToLower(strings.TrimSpace(shop)), recentEventsLimit)
	if err != nil {
		return nil, storageErr("list recent events", err)
	}
	return events, nil
}

func deletedProductID(body []byte) int64 {
	var payload struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0
	}
	return payload.ID
}
