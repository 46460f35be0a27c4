package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const scanCount = 100

type RedisStoreOpts struct {
	UuidProvider func() uuid.UUID
}

// RedisStore keeps each window as a sorted set scored by unix millis.
type RedisStore struct {
	client       *redis.Client
	uuidProvider func() uuid.UUID
}

func NewRedisStore(client *redis.Client, opts *RedisStoreOpts) *RedisStore {
	uuidProvider := uuid.New
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &RedisStore{
		client:       client,
		uuidProvider: uuidProvider,
	}
}

func fullKey(key string) string {
	if strings.HasPrefix(key, domain.KeyPrefix) {
		return key
	}
	return domain.KeyPrefix + key
}

// Hit runs trim, insert, count and expiry in one MULTI/EXEC so the count
// includes this request and no other request can interleave.
func (s *RedisStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	k := fullKey(key)
	nowMs := now.UnixMilli()
	windowStart := now.Add(-window).UnixMilli()
	member := fmt.Sprintf("%d:%s", nowMs, s.uuidProvider().String())

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, k, &redis.Z{
		Score:  float64(nowMs),
		Member: member,
	})
	card := pipe.ZCard(ctx, k)
	pipe.PExpire(ctx, k, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("%w: failed to execute window pipeline: %v", domain.ErrCounterStoreUnavailable, err)
	}
	return card.Val(), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Del(ctx, fullKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: failed to delete %s: %v", domain.ErrCounterStoreUnavailable, key, err)
	}
	return n > 0, nil
}

// Stats walks ratelimit:* with SCAN and sums the cardinality per bucket.
func (s *RedisStore) Stats(ctx context.Context) (map[domain.Bucket]domain.BucketStats, error) {
	stats := make(map[domain.Bucket]domain.BucketStats)
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, domain.KeyPrefix+"*", scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan counters: %v", domain.ErrCounterStoreUnavailable, err)
		}
		for _, key := range keys {
			bucket, ok := domain.BucketFromKey(key)
			if !ok {
				continue
			}
			n, err := s.client.ZCard(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("%w: failed to count %s: %v", domain.ErrCounterStoreUnavailable, key, err)
			}
			st := stats[bucket]
			st.Keys++
			st.TotalRequests += n
			stats[bucket] = st
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return stats, nil
}
