package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process WindowStore. Counters are process-local and
// reset on restart; multi-instance deployments should use RedisStore so
// counts are shared.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry

	cleanupEvery time.Duration
	now          func() time.Time
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// MemoryStoreOption customizes a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupEvery sets the janitor interval for evicting expired windows.
func WithCleanupEvery(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.cleanupEvery = d }
}

// WithNowFunc overrides the clock, for tests.
func WithNowFunc(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore constructs an in-process window store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		entries:      make(map[string]*windowEntry),
		cleanupEvery: 2 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Incr implements WindowStore. The count resets to 1 whenever the current
// time has passed the stored reset timestamp; otherwise it increments
// monotonically within the window.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || !now.Before(ent.resetAt) {
		ent = &windowEntry{count: 0, resetAt: now.Add(window)}
		s.entries[key] = ent
	}
	ent.count++
	return ent.count, ent.resetAt, nil
}

// Cleanup evicts windows whose reset time has passed.
func (s *MemoryStore) Cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if !now.Before(ent.resetAt) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup periodically until ctx is canceled, so abandoned
// keys do not accumulate forever.
func (s *MemoryStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}
