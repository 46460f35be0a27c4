package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/sony/gobreaker"
)

// BreakerStore trips after consecutive store failures so callers fail fast
// instead of waiting out the store timeout on every request.
type BreakerStore struct {
	next    domain.CounterStore
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerStore(next domain.CounterStore, name string, openTimeout time.Duration, maxFailures uint32) *BreakerStore {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &BreakerStore{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerStore) State() gobreaker.State {
	return b.breaker.State()
}

func (b *BreakerStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	res, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Hit(ctx, key, now, window)
	})
	if err != nil {
		return 0, b.wrap(err)
	}
	return res.(int64), nil
}

func (b *BreakerStore) Reset(ctx context.Context, key string) (bool, error) {
	res, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Reset(ctx, key)
	})
	if err != nil {
		return false, b.wrap(err)
	}
	return res.(bool), nil
}

func (b *BreakerStore) Stats(ctx context.Context) (map[domain.Bucket]domain.BucketStats, error) {
	res, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Stats(ctx)
	})
	if err != nil {
		return nil, b.wrap(err)
	}
	return res.(map[domain.Bucket]domain.BucketStats), nil
}

func (b *BreakerStore) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: breaker (%s): %v", domain.ErrCounterStoreUnavailable, b.breaker.Name(), err)
	}
	return fmt.Errorf("breaker (%s): %w", b.breaker.Name(), err)
}
