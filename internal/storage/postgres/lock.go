package postgres

import (
	"context"
	"database/sql/driver"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

const unlockTimeout = 5 * time.Second

// AdvisoryLocker serializes work per tenant with session-scoped advisory
// locks. Each held lock pins one pooled connection until released.
type AdvisoryLocker struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewAdvisoryLocker(db *sqlx.DB, logger *slog.Logger) *AdvisoryLocker {
	return &AdvisoryLocker{db: db, logger: logger}
}

// TryLock attempts the tenant's lock without waiting. When acquired is true
// the caller must invoke release exactly once.
func (l *AdvisoryLocker) TryLock(ctx context.Context, shopDomain string) (release func(), acquired bool, err error) {
	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, false, err
	}

	key := lockKey(shopDomain)
	if err := conn.QueryRowxContext(ctx, `SELECT pg_try_advisory_lock($1)`, key).Scan(&acquired); err != nil {
		conn.Close()
		return nil, false, err
	}
	if !acquired {
		conn.Close()
		return nil, false, nil
	}

	release = func() {
		ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()

		if _, err := conn.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, key); err != nil {
			l.logger.Warn("advisory unlock failed, discarding connection",
				"tenant", shopDomain,
				"error", err,
			)
			// The session would keep the lock; drop it instead of pooling it.
			_ = conn.Raw(func(any) error { return driver.ErrBadConn })
		}
		conn.Close()
	}
	return release, true, nil
}

func lockKey(shopDomain string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("catalog-sync"))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(shopDomain))
	return int64(h.Sum64())
}
