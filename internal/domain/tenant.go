package domain

import "time"

// Credential is the upstream access token of a tenant. TenantKey is the
// canonical shop domain; aliases never appear here.
type Credential struct {
	TenantKey   string `db:"shop_domain"`
	AccessToken string `db:"access_token"`
}

type Tenant struct {
	ShopDomain  string    `db:"shop_domain"`
	AccessToken string    `db:"access_token"`
	Scopes      string    `db:"scopes"`
	InstalledAt time.Time `db:"installed_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
