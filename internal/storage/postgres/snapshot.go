package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Upsert replaces the tenant's snapshot.
func (s *SnapshotStore) Upsert(ctx context.Context, snap *domain.Snapshot) error {
	query := `
		INSERT INTO catalog_snapshots (shop_domain, generated_at, products_count, bytes, csv)
		VALUES (:shop_domain, :generated_at, :products_count, :bytes, :csv)
		ON CONFLICT (shop_domain) DO UPDATE SET
			generated_at = EXCLUDED.generated_at,
			products_count = EXCLUDED.products_count,
			bytes = EXCLUDED.bytes,
			csv = EXCLUDED.csv`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, snap)
	return err
}

// Get returns the tenant's snapshot, or nil if none was ever produced.
func (s *SnapshotStore) Get(ctx context.Context, shopDomain string) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &snap, `
		SELECT shop_domain, generated_at, products_count, bytes, csv
		FROM catalog_snapshots
		WHERE shop_domain = $1`, shopDomain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
