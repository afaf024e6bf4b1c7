package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/config"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/mapping"
)

const closeTimeout = 10 * time.Second

// Stores groups the persistence dependencies of SyncService.
type Stores struct {
	Dirty     DirtyStore
	Runs      SyncRunStore
	Snapshots SnapshotStore
	Entries   CatalogEntryStore
	Events    WebhookEventStore
}

type SyncService struct {
	resolver  *CredentialResolver
	source    CatalogSource
	stores    Stores
	locker    TenantLocker
	txManager TransactionManager
	publisher Publisher
	archiver  Archiver
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time

	// slots bounds in-flight runs process-wide. Each run pins a pooled
	// connection for its advisory lock and needs another for its statements.
	slots *semaphore.Weighted
}

// NewSyncService wires the orchestrator. publisher and archiver may be nil.
func NewSyncService(
	resolver *CredentialResolver,
	source CatalogSource,
	stores Stores,
	locker TenantLocker,
	txManager TransactionManager,
	publisher Publisher,
	archiver Archiver,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		resolver:  resolver,
		source:    source,
		stores:    stores,
		locker:    locker,
		txManager: txManager,
		publisher: publisher,
		archiver:  archiver,
		logger:    logger.With("component", "sync"),
		config:    cfg,
		now:       time.Now,
		slots:     semaphore.NewWeighted(int64(max(cfg.Concurrency, 1))),
	}
}

// SyncTenant runs one sync for a tenant that has pending changes. It fails
// with domain.ErrConflict when the tenant is not dirty or another run holds it.
func (s *SyncService) SyncTenant(ctx context.Context, input string) (*domain.SyncResult, error) {
	cred, err := s.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	holder := uuid.NewString()
	if _, err := s.stores.Dirty.Acquire(ctx, cred.TenantKey, holder, s.config.LeaseTTL); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, storageErr("acquire lease", err)
	}
	defer s.releaseLease(ctx, cred.TenantKey, holder)

	if err := s.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("wait for run slot: %w", err)
	}
	defer s.slots.Release(1)

	unlock, acquired, err := s.locker.TryLock(ctx, cred.TenantKey)
	if err != nil {
		return nil, storageErr("lock tenant", err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: tenant %s is being synced", domain.ErrConflict, cred.TenantKey)
	}
	defer unlock()

	return s.run(ctx, cred)
}

// SyncBatch syncs up to limit pending tenants, oldest marker first. Tenants
// locked elsewhere are skipped; a failing tenant does not stop the others.
func (s *SyncService) SyncBatch(ctx context.Context, limit int) (*domain.BatchStats, error) {
	startTime := s.now()
	if limit <= 0 {
		limit = s.config.BatchLimit
	}

	markers, err := s.stores.Dirty.ListPending(ctx, limit)
	if err != nil {
		return nil, storageErr("list pending tenants", err)
	}

	s.logger.Info("starting batch sync", "pending", len(markers), "limit", limit)

	items := make([]domain.BatchItem, len(markers))

	var g errgroup.Group
	g.SetLimit(max(s.config.Concurrency, 1))
	for i, marker := range markers {
		i, marker := i, marker
		g.Go(func() error {
			items[i] = s.syncPending(ctx, marker.ShopDomain)
			return nil
		})
	}
	_ = g.Wait()

	stats := &domain.BatchStats{Items: items}
	for _, item := range items {
		switch item.Outcome {
		case domain.OutcomeProcessed:
			stats.Processed++
		case domain.OutcomeSkipped:
			stats.Skipped++
		case domain.OutcomeFailed:
			stats.Failed++
		}
	}
	stats.Duration = time.Since(startTime)

	s.logger.Info("batch sync completed",
		"processed", stats.Processed,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) syncPending(ctx context.Context, tenant string) domain.BatchItem {
	item := domain.BatchItem{TenantKey: tenant}

	if err := s.slots.Acquire(ctx, 1); err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Error = fmt.Errorf("wait for run slot: %w", err).Error()
		return item
	}
	defer s.slots.Release(1)

	unlock, acquired, err := s.locker.TryLock(ctx, tenant)
	if err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Error = storageErr("lock tenant", err).Error()
		return item
	}
	if !acquired {
		item.Outcome = domain.OutcomeSkipped
		return item
	}
	defer unlock()

	// The marker may have been cleared or leased since it was listed.
	pending, err := s.stores.Dirty.Pending(ctx, tenant)
	if err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Error = storageErr("check marker", err).Error()
		return item
	}
	if !pending {
		item.Outcome = domain.OutcomeSkipped
		return item
	}

	cred, err := s.resolver.Resolve(ctx, tenant)
	if err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Error = err.Error()
		s.backoff(ctx, tenant)
		return item
	}

	result, err := s.run(ctx, cred)
	if result != nil {
		item.RunID = result.RunID
		item.ProductsCount = result.ProductsCount
	}
	if err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Error = err.Error()
		s.backoff(ctx, tenant)
		return item
	}

	item.Outcome = domain.OutcomeProcessed
	return item
}

// run performs one sync for cred while the caller holds the tenant lock. The
// returned result is non-nil once a run row exists, even on failure.
func (s *SyncService) run(ctx context.Context, cred domain.Credential) (*domain.SyncResult, error) {
	startTime := s.now()
	logger := s.logger.With("tenant", cred.TenantKey)

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if s.config.RunTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, s.config.RunTimeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	run, err := s.stores.Runs.Start(runCtx, cred.TenantKey)
	if err != nil {
		return nil, storageErr("start run", err)
	}
	logger = logger.With("run_id", run.ID)
	logger.Info("starting sync")

	result := &domain.SyncResult{TenantKey: cred.TenantKey, RunID: run.ID}

	products, err := s.source.FetchProducts(runCtx, cred)
	if err != nil {
		return result, s.failRun(ctx, logger, run.ID, fmt.Errorf("fetch products: %w", err), nil)
	}

	logger.Info("fetched products", "products", len(products))

	var warning *string
	if len(products) > 0 {
		ids := make([]int64, len(products))
		for i := range products {
			ids[i] = products[i].ID
		}

		cols := s.source.ResolveCollections(runCtx, cred, ids)
		for i := range products {
			products[i].Collections = cols.Collections[products[i].ID]
		}
		if cols.Warning != nil {
			w := fmt.Sprintf("collections enrichment incomplete: %v", cols.Warning)
			warning = &w
			result.Warnings = append(result.Warnings, w)
			logger.Warn("collections enrichment incomplete", "error", cols.Warning)
		}
	}

	csv := mapping.EncodeCSV(mapping.BuildAllRows(products))
	snap := &domain.Snapshot{
		ShopDomain:    cred.TenantKey,
		GeneratedAt:   s.now().UTC(),
		ProductsCount: len(products),
		Bytes:         len(csv),
		CSV:           csv,
	}

	err = s.txManager.WithTransaction(runCtx, func(txCtx context.Context) error {
		if err := s.stores.Snapshots.Upsert(txCtx, snap); err != nil {
			return fmt.Errorf("upsert snapshot: %w", err)
		}
		if err := s.stores.Entries.Reconcile(txCtx, cred.TenantKey, products); err != nil {
			return fmt.Errorf("reconcile catalog entries: %w", err)
		}
		if _, err := s.stores.Events.MarkProcessed(txCtx, cred.TenantKey, run.StartedAt); err != nil {
			return fmt.Errorf("mark events processed: %w", err)
		}
		cleared, err := s.stores.Dirty.Clear(txCtx, cred.TenantKey, run.StartedAt)
		if err != nil {
			return fmt.Errorf("clear dirty marker: %w", err)
		}
		if !cleared {
			logger.Info("tenant changed during sync, keeping it queued")
		}
		return nil
	})
	if err != nil {
		return result, s.failRun(ctx, logger, run.ID, storageErr("commit snapshot", err), warning)
	}

	closeCtx, closeCancel := s.closeContext(ctx)
	defer closeCancel()
	if err := s.stores.Runs.Finish(closeCtx, run.ID, snap.ProductsCount, snap.Bytes, warning); err != nil {
		// The snapshot is committed, but the run row must not stay open.
		return result, s.failRun(ctx, logger, run.ID, storageErr("finish run", err), warning)
	}

	result.ProductsCount = snap.ProductsCount
	result.Bytes = snap.Bytes
	result.Duration = time.Since(startTime)

	logger.Info("sync completed",
		"products", result.ProductsCount,
		"bytes", result.Bytes,
		"warnings", len(result.Warnings),
		"duration", result.Duration,
	)

	s.fanOut(ctx, logger, run.ID, snap)

	return result, nil
}

func (s *SyncService) failRun(ctx context.Context, logger *slog.Logger, runID int64, cause error, warning *string) error {
	logger.Error("sync failed", "error", cause)

	closeCtx, cancel := s.closeContext(ctx)
	defer cancel()

	if err := s.stores.Runs.Fail(closeCtx, runID, cause.Error(), warning); err != nil {
		logger.Error("failed to close run", "error", err)
	}
	return cause
}

// backoff delays the next scheduled attempt for a failing tenant so it does
// not hold the head of the oldest-first queue.
func (s *SyncService) backoff(ctx context.Context, tenant string) {
	if s.config.FailureBackoff <= 0 {
		return
	}

	closeCtx, cancel := s.closeContext(ctx)
	defer cancel()

	limit := max(s.config.MaxFailureBackoff, s.config.FailureBackoff)
	retryAfter, err := s.stores.Dirty.Backoff(closeCtx, tenant, s.config.FailureBackoff, limit)
	if err != nil {
		s.logger.Warn("failed to back off tenant", "tenant", tenant, "error", err)
		return
	}
	if !retryAfter.IsZero() {
		s.logger.Info("tenant backed off", "tenant", tenant, "retry_after", retryAfter)
	}
}

func (s *SyncService) releaseLease(ctx context.Context, tenant, holder string) {
	closeCtx, cancel := s.closeContext(ctx)
	defer cancel()

	if err := s.stores.Dirty.Release(closeCtx, tenant, holder); err != nil {
		s.logger.Warn("failed to release lease", "tenant", tenant, "error", err)
	}
}

// fanOut hands a committed snapshot to the optional downstream sinks.
func (s *SyncService) fanOut(ctx context.Context, logger *slog.Logger, runID int64, snap *domain.Snapshot) {
	if s.archiver != nil {
		key, err := s.archiver.Archive(ctx, snap)
		if err != nil {
			logger.Warn("snapshot archive failed", "error", err)
		} else {
			logger.Debug("snapshot archived", "key", key)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSnapshot(ctx, snap, runID); err != nil {
			logger.Warn("snapshot publish failed", "error", err)
		}
	}
}

// closeContext outlives cancellation of ctx so bookkeeping still lands.
func (s *SyncService) closeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
}

// Snapshot returns the latest generated feed of a tenant.
func (s *SyncService) Snapshot(ctx context.Context, input string) (*domain.Snapshot, error) {
	cred, err := s.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	snap, err := s.stores.Snapshots.Get(ctx, cred.TenantKey)
	if err != nil {
		return nil, storageErr("load snapshot", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%w: no snapshot for tenant %s", domain.ErrNotFound, cred.TenantKey)
	}
	return snap, nil
}

// Maintain reaps expired leases and prunes old runs when retention is set.
func (s *SyncService) Maintain(ctx context.Context) error {
	reaped, err := s.stores.Dirty.ReapExpired(ctx)
	if err != nil {
		return storageErr("reap leases", err)
	}
	if reaped > 0 {
		s.logger.Warn("reaped expired leases", "count", reaped)
	}

	if s.config.RunRetention <= 0 {
		return nil
	}

	pruned, err := s.stores.Runs.Prune(ctx, s.now().Add(-s.config.RunRetention))
	if err != nil {
		return storageErr("prune runs", err)
	}
	if pruned > 0 {
		s.logger.Info("pruned sync runs", "count", pruned)
	}
	return nil
}
