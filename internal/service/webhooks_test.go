package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/service/mocks"
)

func TestWebhookService_RegisterCreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantStore(ctrl)
	registrar := mocks.NewMockWebhookRegistrar(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	svc := NewWebhookService(NewCredentialResolver(tenants), registrar, "https://sync.example.com/", logger)
	address := "https://sync.example.com/webhooks/shopify"

	cred := domain.Credential{TenantKey: tenant, AccessToken: "shpat"}
	tenants.EXPECT().Resolve(gomock.Any(), tenant).Return(&cred, nil)
	registrar.EXPECT().ListWebhooks(gomock.Any(), cred).Return([]domain.WebhookSubscription{
		{ID: 1, Topic: "products/create", Address: address},
		{ID: 2, Topic: "products/update", Address: "https://old.example.com/hook"},
	}, nil)
	for _, topic := range []string{"products/update", "products/delete", "inventory_levels/update"} {
		registrar.EXPECT().CreateWebhook(gomock.Any(), cred, topic, address).
			Return(&domain.WebhookSubscription{Topic: topic, Address: address}, nil)
	}

	reg, err := svc.Register(context.Background(), tenant)

	require.NoError(t, err)
	assert.Equal(t, address, reg.Address)
	assert.Equal(t, []string{"products/create"}, reg.Already)
	assert.Equal(t, []string{"products/update", "products/delete", "inventory_levels/update"}, reg.Created)
}

func TestWebhookService_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenants := mocks.NewMockTenantStore(ctrl)
	registrar := mocks.NewMockWebhookRegistrar(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	svc := NewWebhookService(NewCredentialResolver(tenants), registrar, "https://sync.example.com", logger)

	cred := domain.Credential{TenantKey: tenant, AccessToken: "shpat"}
	tenants.EXPECT().Resolve(gomock.Any(), tenant).Return(&cred, nil)
	registrar.EXPECT().ListWebhooks(gomock.Any(), cred).Return(nil, &domain.UpstreamError{Status: 403, Body: "forbidden"})

	_, err := svc.Register(context.Background(), tenant)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestWebhookService_RequiresAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	svc := NewWebhookService(NewCredentialResolver(mocks.NewMockTenantStore(ctrl)), mocks.NewMockWebhookRegistrar(ctrl), "", logger)

	_, err := svc.Register(context.Background(), tenant)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
