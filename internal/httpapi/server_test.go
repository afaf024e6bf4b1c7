package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/httpapi/mocks"
)

type fixture struct {
	intake    *mocks.MockIntake
	syncer    *mocks.MockSyncer
	registrar *mocks.MockRegistrar
	db        *mocks.MockPinger
	server    *Server
}

// newFixture builds a server over fresh mocks. Any call without a matching
// expectation fails the test.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		intake:    mocks.NewMockIntake(ctrl),
		syncer:    mocks.NewMockSyncer(ctrl),
		registrar: mocks.NewMockRegistrar(ctrl),
		db:        mocks.NewMockPinger(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	f.server = New(Config{AdminKey: "admin", ExportKey: "export", BodyLimit: 1 << 20}, f.intake, f.syncer, f.registrar, f.db, logger)
	return f
}

func (f *fixture) do(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := f.server.App().Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func TestWebhook_PassesHeadersAndBody(t *testing.T) {
	f := newFixture(t)
	var got domain.WebhookDelivery
	f.intake.EXPECT().Receive(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.WebhookDelivery) (*domain.IntakeResult, error) {
			got = d
			return &domain.IntakeResult{TenantKey: "acme.myshopify.com"}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/shopify", strings.NewReader(`{"id":1}`))
	req.Header.Set("X-Shopify-Hmac-Sha256", "sig")
	req.Header.Set("X-Shopify-Topic", "products/update")
	req.Header.Set("X-Shopify-Shop-Domain", "acme.myshopify.com")
	req.Header.Set("X-Shopify-Webhook-Id", "wh-1")
	req.Header.Set("X-Shopify-Event-Id", "evt-1")

	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, false, body["duplicate"])
	assert.Equal(t, `{"id":1}`, string(got.Body))
	assert.Equal(t, "sig", got.Signature)
	assert.Equal(t, "products/update", got.Topic)
	assert.Equal(t, "wh-1", got.WebhookID)
	assert.Equal(t, "evt-1", got.EventID)
}

func TestWebhook_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad signature", fmt.Errorf("%w: invalid", domain.ErrAuthentication), http.StatusUnauthorized},
		{"missing headers", fmt.Errorf("%w: missing", domain.ErrValidation), http.StatusBadRequest},
		{"storage", fmt.Errorf("%w: insert: boom", domain.ErrStorage), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.intake.EXPECT().Receive(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/shopify", strings.NewReader(`{}`))
			resp, body := f.do(t, req)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, false, body["ok"])
		})
	}
}

func TestAdmin_RequiresKey(t *testing.T) {
	f := newFixture(t)

	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/admin/sync?shop=acme.myshopify.com", nil)
		if key != "" {
			req.Header.Set(headerAdminKey, key)
		}
		resp, body := f.do(t, req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "unauthorized", body["error"])
	}
}

func TestAdminSync_Success(t *testing.T) {
	f := newFixture(t)
	f.syncer.EXPECT().SyncTenant(gomock.Any(), "acme.com").Return(&domain.SyncResult{
		TenantKey:     "acme.myshopify.com",
		RunID:         12,
		ProductsCount: 3,
		Duration:      2 * time.Second,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/sync?shop=acme.com", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "acme.myshopify.com", body["tenantKey"])
	assert.Equal(t, float64(12), body["runId"])
	assert.Equal(t, float64(3), body["productsCount"])
	assert.Equal(t, []any{}, body["warnings"])
}

func TestAdminSync_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing shop", fmt.Errorf("%w: shop is required", domain.ErrValidation), http.StatusBadRequest},
		{"unknown tenant", fmt.Errorf("%w: unknown", domain.ErrNotFound), http.StatusNotFound},
		{"not dirty", fmt.Errorf("%w: no pending changes", domain.ErrConflict), http.StatusConflict},
		{"upstream", fmt.Errorf("fetch products: %w", &domain.UpstreamError{Status: 401, Body: "bad token"}), http.StatusBadGateway},
		{"unexpected", errors.New("kaboom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.syncer.EXPECT().SyncTenant(gomock.Any(), "acme.com").Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/admin/sync?shop=acme.com", nil)
			req.Header.Set(headerAdminKey, "admin")
			resp, body := f.do(t, req)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, false, body["ok"])
		})
	}
}

func TestAdminSync_UpstreamStatusExposed(t *testing.T) {
	f := newFixture(t)
	f.syncer.EXPECT().SyncTenant(gomock.Any(), "acme.com").
		Return(nil, fmt.Errorf("fetch products: %w", &domain.UpstreamError{Status: 429, Body: "slow down"}))

	req := httptest.NewRequest(http.MethodPost, "/admin/sync?shop=acme.com", nil)
	req.Header.Set(headerAdminKey, "admin")
	_, body := f.do(t, req)

	assert.Equal(t, float64(429), body["upstreamStatus"])
	assert.NotContains(t, body["error"], "slow down")
}

func TestAdminBatch(t *testing.T) {
	f := newFixture(t)
	f.syncer.EXPECT().SyncBatch(gomock.Any(), 5).Return(&domain.BatchStats{
		Processed: 1,
		Skipped:   1,
		Items: []domain.BatchItem{
			{TenantKey: "a.myshopify.com", Outcome: domain.OutcomeProcessed, RunID: 4, ProductsCount: 2},
			{TenantKey: "b.myshopify.com", Outcome: domain.OutcomeSkipped},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/sync/batch?limit=5", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["processed"])
	assert.Equal(t, float64(1), body["skipped"])
	assert.Equal(t, float64(0), body["failed"])
	results := body["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, "processed", results[0].(map[string]any)["outcome"])
}

func TestAdminBatch_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	f.syncer.EXPECT().SyncBatch(gomock.Any(), 0).Return(&domain.BatchStats{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/sync/batch", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{}, body["results"])
}

func TestAdminBatch_InvalidLimit(t *testing.T) {
	f := newFixture(t)

	for _, limit := range []string{"0", "-3", "abc"} {
		req := httptest.NewRequest(http.MethodPost, "/admin/sync/batch?limit="+limit, nil)
		req.Header.Set(headerAdminKey, "admin")
		resp, _ := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestAdminRecentWebhooks(t *testing.T) {
	f := newFixture(t)
	f.intake.EXPECT().Recent(gomock.Any(), "").Return([]domain.WebhookEvent{
		{ID: 1, IdempotencyKey: "evt-1", Topic: "products/update", Status: domain.EventPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/webhooks/recent", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "evt-1", rows[0].(map[string]any)["idempotencyKey"])
}

func TestAdminRegisterWebhooks(t *testing.T) {
	f := newFixture(t)
	f.registrar.EXPECT().Register(gomock.Any(), "acme.com").Return(&domain.Registration{
		ShopDomain: "acme.myshopify.com",
		Address:    "https://sync.example.com/webhooks/shopify",
		Already:    []string{"products/create"},
		Created:    []string{"products/update"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/webhooks/register?shop=acme.com", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, body := f.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://sync.example.com/webhooks/shopify", body["address"])
	assert.Equal(t, []any{"products/update"}, body["created"])
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	f.syncer.EXPECT().Snapshot(gomock.Any(), "acme.com").Return(&domain.Snapshot{
		ShopDomain:  "acme.myshopify.com",
		GeneratedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		CSV:         []byte("\"product_id\"\n"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exports/goodbarber/products.csv?shop=acme.com", nil)
	req.Header.Set(headerExportKey, "export")
	resp, err := f.server.App().Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "products.csv")
	assert.Equal(t, "2025-03-01T12:00:00Z", resp.Header.Get("X-Generated-At"))
	assert.Equal(t, "\"product_id\"\n", string(raw))
}

func TestExport_Errors(t *testing.T) {
	f := newFixture(t)

	// The admin key does not open the export.
	req := httptest.NewRequest(http.MethodGet, "/exports/goodbarber/products.csv?shop=acme.com", nil)
	req.Header.Set(headerAdminKey, "admin")
	resp, _ := f.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	f.syncer.EXPECT().Snapshot(gomock.Any(), "acme.com").Return(nil, fmt.Errorf("%w: no snapshot", domain.ErrNotFound))
	req = httptest.NewRequest(http.MethodGet, "/exports/goodbarber/products.csv?shop=acme.com", nil)
	req.Header.Set(headerExportKey, "export")
	resp, _ = f.do(t, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	resp, body := f.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	f.db.EXPECT().PingContext(gomock.Any()).Return(nil)
	resp, _ = f.do(t, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	f.db.EXPECT().PingContext(gomock.Any()).Return(errors.New("no route to host"))
	resp, body = f.do(t, httptest.NewRequest(http.MethodGet, "/health/db", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
}
