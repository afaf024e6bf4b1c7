package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

type WebhookEventStore struct {
	db *sqlx.DB
}

func NewWebhookEventStore(db *sqlx.DB) *WebhookEventStore {
	return &WebhookEventStore{db: db}
}

// Insert records evt unless an event with the same idempotency key exists.
// It reports whether a row was written.
func (s *WebhookEventStore) Insert(ctx context.Context, evt *domain.WebhookEvent) (bool, error) {
	query := `
		INSERT INTO webhook_events (
			idempotency_key, event_id, webhook_id, topic, shop_domain,
			api_version, triggered_at, payload, status, received_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8::jsonb, 'pending', clock_timestamp()
		)
		ON CONFLICT (idempotency_key) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		evt.IdempotencyKey,
		evt.EventID,
		evt.WebhookID,
		evt.Topic,
		evt.ShopDomain,
		evt.APIVersion,
		evt.TriggeredAt,
		string(evt.Payload),
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// MarkProcessed flips pending events of a tenant received at or before
// receivedBefore to processed.
func (s *WebhookEventStore) MarkProcessed(ctx context.Context, shopDomain string, receivedBefore time.Time) (int64, error) {
	query := `
		UPDATE webhook_events
		SET status = 'processed', processed_at = now()
		WHERE shop_domain = $1 AND status = 'pending' AND received_at <= $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, shopDomain, receivedBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Recent lists the latest events, optionally for one tenant. Payloads are
// not loaded.
func (s *WebhookEventStore) Recent(ctx context.Context, shopDomain string, limit int) ([]domain.WebhookEvent, error) {
	query := `
		SELECT id, idempotency_key, event_id, webhook_id, topic, shop_domain,
		       api_version, triggered_at, status, received_at, processed_at
		FROM webhook_events
		WHERE ($1 = '' OR shop_domain = $1)
		ORDER BY received_at DESC, id DESC
		LIMIT $2`

	var events []domain.WebhookEvent
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &events, query, shopDomain, limit)
	return events, err
}
