package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const runColumns = `id, shop_domain, status, started_at, finished_at, products_count, bytes, error, warning`

type SyncRunStore struct {
	db *sqlx.DB
}

func NewSyncRunStore(db *sqlx.DB) *SyncRunStore {
	return &SyncRunStore{db: db}
}

// Start opens a run. StartedAt is the database clock and bounds which
// webhook arrivals the run accounts for.
func (s *SyncRunStore) Start(ctx context.Context, shopDomain string) (*domain.SyncRun, error) {
	query := `
		INSERT INTO sync_runs (shop_domain, status, started_at)
		VALUES ($1, 'running', clock_timestamp())
		RETURNING ` + runColumns

	var run domain.SyncRun
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run, query, shopDomain); err != nil {
		return nil, err
	}
	return &run, nil
}

// Finish closes a running run as ok.
func (s *SyncRunStore) Finish(ctx context.Context, id int64, productsCount, bytes int, warning *string) error {
	query := `
		UPDATE sync_runs SET
			status = 'ok',
			finished_at = clock_timestamp(),
			products_count = $2,
			bytes = $3,
			warning = $4
		WHERE id = $1 AND status = 'running'`

	return s.close(ctx, query, id, productsCount, bytes, warning)
}

// Fail closes a running run as failed.
func (s *SyncRunStore) Fail(ctx context.Context, id int64, errText string, warning *string) error {
	query := `
		UPDATE sync_runs SET
			status = 'failed',
			finished_at = clock_timestamp(),
			error = $2,
			warning = $3
		WHERE id = $1 AND status = 'running'`

	return s.close(ctx, query, id, errText, warning)
}

func (s *SyncRunStore) close(ctx context.Context, query string, id int64, args ...any) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %d is not running", id)
	}
	return nil
}

func (s *SyncRunStore) Get(ctx context.Context, id int64) (*domain.SyncRun, error) {
	var run domain.SyncRun
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run,
		`SELECT `+runColumns+` FROM sync_runs WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Prune deletes closed runs that finished before cutoff.
func (s *SyncRunStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM sync_runs WHERE status <> 'running' AND finished_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
