package ratelimit

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
)

const sweepEvery = 1024

type memoryWindow struct {
	mu        sync.Mutex
	stamps    []int64
	expiresAt time.Time
}

// MemoryStore is a single-process CounterStore. Each key has its own mutex
// held across trim, insert and count.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	hits    int
	now     func() time.Time
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		windows: make(map[string]*memoryWindow),
		now:     now,
	}
}

func (s *MemoryStore) window(key string, now time.Time) *memoryWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits++
	if s.hits%sweepEvery == 0 {
		s.sweepLocked(now)
	}
	w, ok := s.windows[key]
	if !ok {
		w = &memoryWindow{}
		s.windows[key] = w
	}
	return w
}

// sweepLocked drops idle windows. Callers hold s.mu.
func (s *MemoryStore) sweepLocked(now time.Time) {
	for k, w := range s.windows {
		w.mu.Lock()
		expired := !w.expiresAt.IsZero() && !now.Before(w.expiresAt)
		w.mu.Unlock()
		if expired {
			delete(s.windows, k)
		}
	}
}

func (s *MemoryStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	k := fullKey(key)
	w := s.window(k, now)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.expiresAt.IsZero() && !now.Before(w.expiresAt) {
		w.stamps = w.stamps[:0]
	}
	cutoff := now.Add(-window).UnixMilli()
	idx := sort.Search(len(w.stamps), func(i int) bool { return w.stamps[i] > cutoff })
	w.stamps = append(w.stamps[:0], w.stamps[idx:]...)

	ms := now.UnixMilli()
	pos := sort.Search(len(w.stamps), func(i int) bool { return w.stamps[i] > ms })
	w.stamps = append(w.stamps, 0)
	copy(w.stamps[pos+1:], w.stamps[pos:])
	w.stamps[pos] = ms

	w.expiresAt = now.Add(window)
	return int64(len(w.stamps)), nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) (bool, error) {
	k := fullKey(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[k]
	if !ok {
		return false, nil
	}
	delete(s.windows, k)
	w.mu.Lock()
	live := w.expiresAt.IsZero() || s.now().Before(w.expiresAt)
	w.mu.Unlock()
	return live, nil
}

func (s *MemoryStore) Stats(ctx context.Context) (map[domain.Bucket]domain.BucketStats, error) {
	now := s.now()
	stats := make(map[domain.Bucket]domain.BucketStats)

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, w := range s.windows {
		bucket, ok := domain.BucketFromKey(k)
		if !ok {
			continue
		}
		w.mu.Lock()
		n := len(w.stamps)
		expired := !w.expiresAt.IsZero() && !now.Before(w.expiresAt)
		w.mu.Unlock()
		if expired || n == 0 {
			continue
		}
		st := stats[bucket]
		st.Keys++
		st.TotalRequests += int64(n)
		stats[bucket] = st
	}
	return stats, nil
}
