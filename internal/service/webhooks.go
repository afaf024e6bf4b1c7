package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const webhookPath = "/webhooks/shopify"

// WebhookTopics are the upstream topics that can change a tenant's feed.
var WebhookTopics = []string{
	"products/create",
	"products/update",
	"products/delete",
	"inventory_levels/update",
}

// WebhookService makes sure a tenant's store notifies this service.
type WebhookService struct {
	resolver  *CredentialResolver
	registrar WebhookRegistrar
	address   string
	logger    *slog.Logger
}

func NewWebhookService(resolver *CredentialResolver, registrar WebhookRegistrar, appBaseURL string, logger *slog.Logger) *WebhookService {
	address := ""
	if base := strings.TrimRight(strings.TrimSpace(appBaseURL), "/"); base != "" {
		address = base + webhookPath
	}
	return &WebhookService{
		resolver:  resolver,
		registrar: registrar,
		address:   address,
		logger:    logger.With("component", "webhooks"),
	}
}

// Register creates the subscriptions from WebhookTopics that the tenant does
// not already have for this service's address.
func (s *WebhookService) Register(ctx context.Context, input string) (*domain.Registration, error) {
	if s.address == "" {
		return nil, fmt.Errorf("%w: app base url is not configured", domain.ErrValidation)
	}

	cred, err := s.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.registrar.ListWebhooks(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, sub := range existing {
		if sub.Address == s.address {
			have[sub.Topic] = true
		}
	}

	reg := &domain.Registration{
		ShopDomain: cred.TenantKey,
		Address:    s.address,
		Already:    []string{},
		Created:    []string{},
	}
	for _, topic := range WebhookTopics {
		if have[topic] {
			reg.Already = append(reg.Already, topic)
			continue
		}
		if _, err := s.registrar.CreateWebhook(ctx, cred, topic, s.address); err != nil {
			return nil, fmt.Errorf("create webhook %s: %w", topic, err)
		}
		reg.Created = append(reg.Created, topic)
	}

	s.logger.Info("webhooks registered",
		"tenant", cred.TenantKey,
		"created", len(reg.Created),
		"already", len(reg.Already),
	)

	return reg, nil
}
