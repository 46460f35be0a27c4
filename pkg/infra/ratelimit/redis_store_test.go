package ratelimit_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/ratelimit"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Hit(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()

	now := time.UnixMilli(1740730536123)
	window := 15 * time.Minute
	uid := uuid.New()
	key := "ratelimit:authentication:127.0.0.1:anonymous"
	windowStart := now.Add(-window).UnixMilli()

	mock.ExpectTxPipeline()
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(2)
	mock.ExpectZAdd(key, &redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: strconv.FormatInt(now.UnixMilli(), 10) + ":" + uid.String(),
	}).SetVal(1)
	mock.ExpectZCard(key).SetVal(4)
	mock.ExpectPExpire(key, window).SetVal(true)
	mock.ExpectTxPipelineExec()

	store := ratelimit.NewRedisStore(redisMock, &ratelimit.RedisStoreOpts{
		UuidProvider: func() uuid.UUID { return uid },
	})

	count, err := store.Hit(context.Background(), "authentication:127.0.0.1:anonymous", now, window)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Hit_PipelineError(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()

	now := time.UnixMilli(1740730536123)
	window := time.Minute
	uid := uuid.New()
	key := "ratelimit:search:127.0.0.1:u1"

	mock.ExpectTxPipeline()
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Add(-window).UnixMilli(), 10)).SetErr(errors.New("connection refused"))

	store := ratelimit.NewRedisStore(redisMock, &ratelimit.RedisStoreOpts{
		UuidProvider: func() uuid.UUID { return uid },
	})

	_, err := store.Hit(context.Background(), key, now, window)
	assert.ErrorIs(t, err, domain.ErrCounterStoreUnavailable)
}

func TestRedisStore_Reset(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	store := ratelimit.NewRedisStore(redisMock, nil)

	mock.ExpectDel("ratelimit:general:1.1.1.1:anonymous").SetVal(1)
	existed, err := store.Reset(context.Background(), "general:1.1.1.1:anonymous")
	require.NoError(t, err)
	assert.True(t, existed)

	mock.ExpectDel("ratelimit:general:2.2.2.2:anonymous").SetVal(0)
	existed, err = store.Reset(context.Background(), "ratelimit:general:2.2.2.2:anonymous")
	require.NoError(t, err)
	assert.False(t, existed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Stats(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	store := ratelimit.NewRedisStore(redisMock, nil)

	mock.ExpectScan(0, "ratelimit:*", 100).SetVal([]string{
		"ratelimit:general:1.1.1.1:anonymous",
		"ratelimit:general:2.2.2.2:u1",
	}, 7)
	mock.ExpectZCard("ratelimit:general:1.1.1.1:anonymous").SetVal(3)
	mock.ExpectZCard("ratelimit:general:2.2.2.2:u1").SetVal(2)
	mock.ExpectScan(7, "ratelimit:*", 100).SetVal([]string{
		"ratelimit:search:1.1.1.1:u1:boyfanz",
		"ratelimit:unknown:1.1.1.1:u1",
	}, 0)
	mock.ExpectZCard("ratelimit:search:1.1.1.1:u1:boyfanz").SetVal(9)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BucketStats{Keys: 2, TotalRequests: 5}, stats[domain.BucketGeneral])
	assert.Equal(t, domain.BucketStats{Keys: 1, TotalRequests: 9}, stats[domain.BucketSearch])
	assert.Len(t, stats, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
