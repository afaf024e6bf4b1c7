package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const markerColumns = `shop_domain, dirty_at, locked_by, locked_at, lease_expires_at, failure_count, retry_after, updated_at`

// DirtyStore keeps one marker per tenant with pending upstream changes. The
// marker doubles as a lease so only one holder syncs the tenant through the
// dirty-gated path. All timestamps come from the database clock.
type DirtyStore struct {
	db *sqlx.DB
}

func NewDirtyStore(db *sqlx.DB) *DirtyStore {
	return &DirtyStore{db: db}
}

// Touch creates the marker or refreshes its dirty timestamp. The timestamp
// is taken when the statement runs, not when the enclosing transaction began,
// so it orders correctly against a run's start.
func (s *DirtyStore) Touch(ctx context.Context, shopDomain string) error {
	query := `
		INSERT INTO dirty_markers (shop_domain, dirty_at, updated_at)
		VALUES ($1, clock_timestamp(), now())
		ON CONFLICT (shop_domain) DO UPDATE SET
			dirty_at = EXCLUDED.dirty_at,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, shopDomain)
	return err
}

// Acquire leases the marker to holder for ttl. It fails with
// domain.ErrConflict when there is no marker or another unexpired lease.
func (s *DirtyStore) Acquire(ctx context.Context, shopDomain, holder string, ttl time.Duration) (*domain.DirtyMarker, error) {
	query := `
		UPDATE dirty_markers SET
			locked_by = $2,
			locked_at = now(),
			lease_expires_at = now() + make_interval(secs => $3),
			updated_at = now()
		WHERE shop_domain = $1
		  AND (locked_by IS NULL OR lease_expires_at IS NULL OR lease_expires_at <= now())
		RETURNING ` + markerColumns

	var marker domain.DirtyMarker
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &marker, query, shopDomain, holder, ttl.Seconds())
	if err == nil {
		return &marker, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	existing, err := s.Get(ctx, shopDomain)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: tenant %s has no pending changes", domain.ErrConflict, shopDomain)
	}
	return nil, fmt.Errorf("%w: tenant %s is locked by another run", domain.ErrConflict, shopDomain)
}

// Release drops holder's lease. A marker leased by someone else is untouched.
func (s *DirtyStore) Release(ctx context.Context, shopDomain, holder string) error {
	query := `
		UPDATE dirty_markers SET
			locked_by = NULL, locked_at = NULL, lease_expires_at = NULL, updated_at = now()
		WHERE shop_domain = $1 AND locked_by = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, shopDomain, holder)
	return err
}

// Clear deletes the marker unless it was refreshed after dirtyBefore. A
// refreshed marker survives with its failure backoff reset, since the run
// that called Clear succeeded.
func (s *DirtyStore) Clear(ctx context.Context, shopDomain string, dirtyBefore time.Time) (bool, error) {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx,
		`DELETE FROM dirty_markers WHERE shop_domain = $1 AND dirty_at <= $2`,
		shopDomain, dirtyBefore,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	_, err = exec.ExecContext(ctx, `
		UPDATE dirty_markers SET failure_count = 0, retry_after = NULL, updated_at = now()
		WHERE shop_domain = $1 AND failure_count > 0`, shopDomain)
	return false, err
}

func (s *DirtyStore) Get(ctx context.Context, shopDomain string) (*domain.DirtyMarker, error) {
	var marker domain.DirtyMarker
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &marker,
		`SELECT `+markerColumns+` FROM dirty_markers WHERE shop_domain = $1`, shopDomain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &marker, nil
}

// Pending reports whether the tenant has a marker without a live lease.
func (s *DirtyStore) Pending(ctx context.Context, shopDomain string) (bool, error) {
	var pending bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &pending, `
		SELECT EXISTS (
			SELECT 1 FROM dirty_markers
			WHERE shop_domain = $1
			  AND (locked_by IS NULL OR lease_expires_at IS NULL OR lease_expires_at <= now())
		)`, shopDomain)
	return pending, err
}

// ListPending returns up to limit markers without a live lease, oldest first.
// Markers still inside their failure backoff are left out.
func (s *DirtyStore) ListPending(ctx context.Context, limit int) ([]domain.DirtyMarker, error) {
	query := `
		SELECT ` + markerColumns + `
		FROM dirty_markers
		WHERE (locked_by IS NULL OR lease_expires_at IS NULL OR lease_expires_at <= now())
		  AND (retry_after IS NULL OR retry_after <= now())
		ORDER BY dirty_at ASC
		LIMIT $1`

	var markers []domain.DirtyMarker
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &markers, query, limit)
	return markers, err
}

// ReapExpired clears every lease past its expiry.
func (s *DirtyStore) ReapExpired(ctx context.Context) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE dirty_markers SET
			locked_by = NULL, locked_at = NULL, lease_expires_at = NULL, updated_at = now()
		WHERE locked_by IS NOT NULL AND lease_expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Backoff records a failed run and keeps the marker out of ListPending for
// base doubled per consecutive failure, capped at limit. It returns the zero
// time when the marker no longer exists.
func (s *DirtyStore) Backoff(ctx context.Context, shopDomain string, base, limit time.Duration) (time.Time, error) {
	query := `
		UPDATE dirty_markers SET
			failure_count = failure_count + 1,
			retry_after = now() + make_interval(secs => LEAST($2::float8 * power(2, LEAST(failure_count, 20)), $3::float8)),
			updated_at = now()
		WHERE shop_domain = $1
		RETURNING retry_after`

	var retryAfter time.Time
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &retryAfter, query, shopDomain, base.Seconds(), limit.Seconds())
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	return retryAfter, err
}
