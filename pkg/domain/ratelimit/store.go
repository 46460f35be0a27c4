package ratelimit

import (
	"context"
	"time"
)

// CounterStore keeps one sliding window per key.
//
//go:generate mockery --name=CounterStore --dir=. --output=./mocks --filename=counter_store_mock.go --case=underscore --with-expecter
type CounterStore interface {
	// Hit drops entries at or before now-window, records now and returns
	// the number of entries left, all as one atomic unit per key.
	Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error)
	// Reset deletes the counter and reports whether one existed.
	Reset(ctx context.Context, key string) (bool, error)
	Stats(ctx context.Context) (map[Bucket]BucketStats, error)
}
