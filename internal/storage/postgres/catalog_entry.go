package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

type CatalogEntryStore struct {
	db *sqlx.DB
}

func NewCatalogEntryStore(db *sqlx.DB) *CatalogEntryStore {
	return &CatalogEntryStore{db: db}
}

// Reconcile marks every product in products active and disables the
// tenant's previously active entries that are no longer present.
func (s *CatalogEntryStore) Reconcile(ctx context.Context, shopDomain string, products []domain.Product) error {
	ids := make([]int64, 0, len(products))
	handles := make([]string, 0, len(products))
	titles := make([]string, 0, len(products))
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
		handles = append(handles, p.Handle)
		titles = append(titles, p.Title)
	}

	exec := GetExecutor(ctx, s.db)

	if len(ids) > 0 {
		upsert := `
			INSERT INTO catalog_entries (shop_domain, product_id, handle, title, status, last_seen_at)
			SELECT $1, u.product_id, u.handle, u.title, 'active', now()
			FROM unnest($2::bigint[], $3::text[], $4::text[]) AS u(product_id, handle, title)
			ON CONFLICT (shop_domain, product_id) DO UPDATE SET
				handle = EXCLUDED.handle,
				title = EXCLUDED.title,
				status = 'active',
				last_seen_at = EXCLUDED.last_seen_at,
				disabled_at = NULL`

		if _, err := exec.ExecContext(ctx, upsert, shopDomain,
			pq.Array(ids), pq.Array(handles), pq.Array(titles)); err != nil {
			return err
		}
	}

	disable := `
		UPDATE catalog_entries SET status = 'disabled', disabled_at = now()
		WHERE shop_domain = $1 AND status = 'active' AND NOT (product_id = ANY($2::bigint[]))`

	_, err := exec.ExecContext(ctx, disable, shopDomain, pq.Array(ids))
	return err
}

// Disable soft-deletes one product, recording it even if never seen before.
func (s *CatalogEntryStore) Disable(ctx context.Context, shopDomain string, productID int64) error {
	query := `
		INSERT INTO catalog_entries (shop_domain, product_id, status, last_seen_at, disabled_at)
		VALUES ($1, $2, 'disabled', now(), now())
		ON CONFLICT (shop_domain, product_id) DO UPDATE SET
			status = 'disabled',
			disabled_at = COALESCE(catalog_entries.disabled_at, EXCLUDED.disabled_at)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, shopDomain, productID)
	return err
}

func (s *CatalogEntryStore) List(ctx context.Context, shopDomain string) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, `
		SELECT shop_domain, product_id, handle, title, status, last_seen_at, disabled_at
		FROM catalog_entries
		WHERE shop_domain = $1
		ORDER BY product_id`, shopDomain)
	return entries, err
}
