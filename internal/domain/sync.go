package domain

import "time"

// DirtyMarker is both the "needs resync" queue entry of a tenant and its
// row-level lease.
type DirtyMarker struct {
	ShopDomain     string     `db:"shop_domain"`
	DirtyAt        time.Time  `db:"dirty_at"`
	LockedBy       *string    `db:"locked_by"`
	LockedAt       *time.Time `db:"locked_at"`
	LeaseExpiresAt *time.Time `db:"lease_expires_at"`
	// FailureCount and RetryAfter hold the scheduler back from a tenant
	// whose recent runs failed.
	FailureCount int        `db:"failure_count"`
	RetryAfter   *time.Time `db:"retry_after"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type RunStatus string

const (
	RunRunning RunStatus = "running"
	RunOK      RunStatus = "ok"
	RunFailed  RunStatus = "failed"
)

type SyncRun struct {
	ID            int64      `db:"id"`
	ShopDomain    string     `db:"shop_domain"`
	Status        RunStatus  `db:"status"`
	StartedAt     time.Time  `db:"started_at"`
	FinishedAt    *time.Time `db:"finished_at"`
	ProductsCount int        `db:"products_count"`
	Bytes         int        `db:"bytes"`
	Error         *string    `db:"error"`
	Warning       *string    `db:"warning"`
}

type Snapshot struct {
	ShopDomain    string    `db:"shop_domain"`
	GeneratedAt   time.Time `db:"generated_at"`
	ProductsCount int       `db:"products_count"`
	Bytes         int       `db:"bytes"`
	CSV           []byte    `db:"csv"`
}

// SyncResult holds the outcome of one run for one tenant.
type SyncResult struct {
	TenantKey     string
	RunID         int64
	ProductsCount int
	Bytes         int
	Warnings      []string
	Duration      time.Duration
}

type BatchOutcome string

const (
	OutcomeProcessed BatchOutcome = "processed"
	OutcomeSkipped   BatchOutcome = "skipped"
	OutcomeFailed    BatchOutcome = "failed"
)

type BatchItem struct {
	TenantKey     string
	Outcome       BatchOutcome
	RunID         int64
	ProductsCount int
	Error         string
}

// BatchStats holds statistics about a batch sync invocation.
type BatchStats struct {
	Processed int
	Skipped   int
	Failed    int
	Items     []BatchItem
	Duration  time.Duration
}
