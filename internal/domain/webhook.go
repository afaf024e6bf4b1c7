package domain

import (
	"encoding/json"
	"time"
)

type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventProcessed EventStatus = "processed"
)

const TopicProductsDelete = "products/delete"

// WebhookDelivery is an inbound notification exactly as received: raw body
// bytes plus the provider headers.
type WebhookDelivery struct {
	Body        []byte
	Signature   string
	Topic       string
	ShopDomain  string
	WebhookID   string
	EventID     string
	APIVersion  string
	TriggeredAt string
}

// IdempotencyKey is the provider event id when present, else the webhook id.
func (d WebhookDelivery) IdempotencyKey() string {
	if d.EventID != "" {
		return d.EventID
	}
	return d.WebhookID
}

type WebhookEvent struct {
	ID             int64           `db:"id"`
	IdempotencyKey string          `db:"idempotency_key"`
	EventID        *string         `db:"event_id"`
	WebhookID      string          `db:"webhook_id"`
	Topic          string          `db:"topic"`
	ShopDomain     string          `db:"shop_domain"`
	APIVersion     *string         `db:"api_version"`
	TriggeredAt    *time.Time      `db:"triggered_at"`
	Payload        json.RawMessage `db:"payload"`
	Status         EventStatus     `db:"status"`
	ReceivedAt     time.Time       `db:"received_at"`
	ProcessedAt    *time.Time      `db:"processed_at"`
}

// IntakeResult reports what Receive did with a delivery.
type IntakeResult struct {
	TenantKey string
	Duplicate bool
}

// Registration reports which webhook topics a tenant already had and which
// were created.
type Registration struct {
	ShopDomain string
	Address    string
	Already    []string
	Created    []string
}
