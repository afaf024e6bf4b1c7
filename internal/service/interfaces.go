package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

type TenantStore interface {
	Resolve(ctx context.Context, input string) (*domain.Credential, error)
}

type WebhookEventStore interface {
	Insert(ctx context.Context, evt *domain.WebhookEvent) (bool, error)
	MarkProcessed(ctx context.Context, shopDomain string, receivedBefore time.Time) (int64, error)
	Recent(ctx context.Context, shopDomain string, limit int) ([]domain.WebhookEvent, error)
}

type DirtyStore interface {
	Touch(ctx context.Context, shopDomain string) error
	Acquire(ctx context.Context, shopDomain, holder string, ttl time.Duration) (*domain.DirtyMarker, error)
	Release(ctx context.Context, shopDomain, holder string) error
	Clear(ctx context.Context, shopDomain string, dirtyBefore time.Time) (bool, error)
	Pending(ctx context.Context, shopDomain string) (bool, error)
	ListPending(ctx context.Context, limit int) ([]domain.DirtyMarker, error)
	ReapExpired(ctx context.Context) (int64, error)
	Backoff(ctx context.Context, shopDomain string, base, limit time.Duration) (time.Time, error)
}

type SyncRunStore interface {
	Start(ctx context.Context, shopDomain string) (*domain.SyncRun, error)
	Finish(ctx context.Context, id int64, productsCount, bytes int, warning *string) error
	Fail(ctx context.Context, id int64, errText string, warning *string) error
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

type SnapshotStore interface {
	Upsert(ctx context.Context, snap *domain.Snapshot) error
	Get(ctx context.Context, shopDomain string) (*domain.Snapshot, error)
}

type CatalogEntryStore interface {
	Reconcile(ctx context.Context, shopDomain string, products []domain.Product) error
	Disable(ctx context.Context, shopDomain string, productID int64) error
}

type TenantLocker interface {
	TryLock(ctx context.Context, shopDomain string) (release func(), acquired bool, err error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CatalogSource interface {
	FetchProducts(ctx context.Context, cred domain.Credential) ([]domain.Product, error)
	ResolveCollections(ctx context.Context, cred domain.Credential, productIDs []int64) domain.CollectionsResult
}

type WebhookRegistrar interface {
	ListWebhooks(ctx context.Context, cred domain.Credential) ([]domain.WebhookSubscription, error)
	CreateWebhook(ctx context.Context, cred domain.Credential, topic, address string) (*domain.WebhookSubscription, error)
}

type Publisher interface {
	PublishSnapshot(ctx context.Context, snap *domain.Snapshot, runID int64) error
	Close() error
}

type Archiver interface {
	Archive(ctx context.Context, snap *domain.Snapshot) (string, error)
}
