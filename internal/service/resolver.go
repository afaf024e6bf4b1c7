package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

// CredentialResolver maps a shop domain or alias to the tenant's canonical
// key and access token. Unknown tenants and tenants without a token are
// reported as domain.ErrNotFound.
type CredentialResolver struct {
	tenants TenantStore
}

func NewCredentialResolver(tenants TenantStore) *CredentialResolver {
	return &CredentialResolver{tenants: tenants}
}

func (r *CredentialResolver) Resolve(ctx context.Context, input string) (domain.Credential, error) {
	if strings.TrimSpace(input) == "" {
		return domain.Credential{}, fmt.Errorf("%w: shop is required", domain.ErrValidation)
	}

	cred, err := r.tenants.Resolve(ctx, input)
	if err != nil {
		return domain.Credential{}, storageErr("resolve tenant", err)
	}
	if cred == nil {
		return domain.Credential{}, fmt.Errorf("%w: unknown tenant %q", domain.ErrNotFound, input)
	}
	if cred.AccessToken == "" {
		return domain.Credential{}, fmt.Errorf("%w: tenant %s has no access token", domain.ErrNotFound, cred.TenantKey)
	}

	return *cred, nil
}

func storageErr(op string, err error) error {
	if errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
