package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

type TenantStore struct {
	db *sqlx.DB
}

func NewTenantStore(db *sqlx.DB) *TenantStore {
	return &TenantStore{db: db}
}

// Resolve looks input up as a canonical shop domain first and as an alias
// second. It returns nil when neither matches.
func (s *TenantStore) Resolve(ctx context.Context, input string) (*domain.Credential, error) {
	key := strings.ToLower(strings.TrimSpace(input))
	if key == "" {
		return nil, nil
	}

	var cred domain.Credential
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cred,
		`SELECT shop_domain, access_token FROM tenants WHERE shop_domain = $1`, key)
	if err == nil {
		return &cred, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &cred, `
		SELECT t.shop_domain, t.access_token
		FROM tenant_aliases a
		INNER JOIN tenants t ON t.shop_domain = a.shop_domain
		WHERE a.alias = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// SaveCredential stores the token of a tenant, replacing any previous one.
func (s *TenantStore) SaveCredential(ctx context.Context, shopDomain, accessToken, scopes string) error {
	query := `
		INSERT INTO tenants (shop_domain, access_token, scopes, installed_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (shop_domain) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			scopes = EXCLUDED.scopes,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		strings.ToLower(strings.TrimSpace(shopDomain)), accessToken, scopes)
	return err
}

func (s *TenantStore) AddAlias(ctx context.Context, alias, shopDomain string) error {
	query := `
		INSERT INTO tenant_aliases (alias, shop_domain)
		VALUES ($1, $2)
		ON CONFLICT (alias) DO UPDATE SET shop_domain = EXCLUDED.shop_domain`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		strings.ToLower(strings.TrimSpace(alias)), strings.ToLower(strings.TrimSpace(shopDomain)))
	return err
}

func (s *TenantStore) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tenants, `
		SELECT shop_domain, access_token, scopes, installed_at, updated_at
		FROM tenants
		ORDER BY shop_domain`)
	return tenants, err
}
