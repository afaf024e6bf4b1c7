package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

func (s *Source) ListWebhooks(ctx context.Context, cred domain.Credential) ([]domain.WebhookSubscription, error) {
	resp, err := s.do(ctx, cred, http.MethodGet, "/webhooks.json", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	var body webhooksResponse
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return nil, fmt.Errorf("decode webhooks: %w", err)
	}
	return body.Webhooks, nil
}

func (s *Source) CreateWebhook(ctx context.Context, cred domain.Credential, topic, address string) (*domain.WebhookSubscription, error) {
	payload, err := json.Marshal(webhookEnvelope{Webhook: webhookInput{Topic: topic, Address: address, Format: "json"}})
	if err != nil {
		return nil, fmt.Errorf("marshal webhook: %w", err)
	}

	resp, err := s.do(ctx, cred, http.MethodPost, "/webhooks.json", nil, payload)
	if err != nil {
		return nil, fmt.Errorf("create webhook %s: %w", topic, err)
	}

	var body createdWebhookResponse
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}
	return &body.Webhook, nil
}
