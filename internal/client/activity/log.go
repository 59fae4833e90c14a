package activity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/google/uuid"
)

// Log is the append-only, size-capped upload history.
type Log struct {
	mu    sync.Mutex
	store Store
	max   int
	now   func() time.Time
}

type Option func(*Log)

// WithMax overrides common.MaxActivityLogEntries. Values below 1 are ignored.
func WithMax(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.max = n
		}
	}
}

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

func NewLog(store Store, opts ...Option) *Log {
	l := &Log{store: store, max: common.MaxActivityLogEntries, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Append stores e after filling a missing ID or timestamp, then trims the
// persisted log to the newest Max entries. It returns the stored entry.
func (l *Log) Append(ctx context.Context, e models.ActivityLogEntry) (models.ActivityLogEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	e.Timestamp = e.Timestamp.UTC()

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.store.ReadAll(ctx)
	if err != nil {
		return e, fmt.Errorf("read activity log: %w", err)
	}

	entries = append(entries, e)
	if over := len(entries) - l.max; over > 0 {
		entries = entries[over:]
	}

	if err := l.store.Overwrite(ctx, entries); err != nil {
		return e, fmt.Errorf("write activity log: %w", err)
	}
	return e, nil
}

// Entries returns the retained entries, oldest first.
func (l *Log) Entries(ctx context.Context) ([]models.ActivityLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.ReadAll(ctx)
}

func (l *Log) Max() int {
	return l.max
}
