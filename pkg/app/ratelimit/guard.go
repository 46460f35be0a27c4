package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

var ErrUnknownBucket = errors.New("no rule configured for bucket")

//go:generate mockery --name=Guard --dir=. --output=./mocks --filename=guard_mock.go --case=underscore --with-expecter
type Guard interface {
	Evaluate(ctx context.Context, req domain.Request) (domain.Decision, error)
	ResetRateLimit(ctx context.Context, key string) (bool, error)
	GetStatistics(ctx context.Context) (map[domain.Bucket]domain.BucketStats, error)
	Rules() domain.Rules
}

type GuardOpts struct {
	TimeProvider func() time.Time
}

type guard struct {
	logger       *logrus.Logger
	store        domain.CounterStore
	classifier   Classifier
	rules        domain.Rules
	storeTimeout time.Duration
	timeProvider func() time.Time
}

func NewGuard(
	logger *logrus.Logger,
	store domain.CounterStore,
	classifier Classifier,
	rules domain.Rules,
	storeTimeout time.Duration,
	opts *GuardOpts,
) Guard {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	if rules == nil {
		rules = domain.DefaultRules()
	}
	return &guard{
		logger:       logger,
		store:        store,
		classifier:   classifier,
		rules:        rules,
		storeTimeout: storeTimeout,
		timeProvider: timeProvider,
	}
}

func (g *guard) Rules() domain.Rules {
	return g.rules
}

// Evaluate classifies req, records it in its window and returns the
// decision. Only the store round trip fails open: a store error or timeout
// admits the request with FailedOpen set and Remaining equal to Limit.
func (g *guard) Evaluate(ctx context.Context, req domain.Request) (domain.Decision, error) {
	bucket := g.classifier.Classify(req)
	rule, ok := g.rules[bucket]
	if !ok {
		return domain.Decision{}, fmt.Errorf("%w: %s", ErrUnknownBucket, bucket)
	}

	now := g.timeProvider()
	decision := domain.Decision{
		Bucket:            bucket,
		Key:               domain.DeriveKey(bucket, req),
		Limit:             rule.Max,
		ResetTime:         now.Add(rule.Window),
		RetryAfterSeconds: rule.RetryAfterSeconds(),
		Message:           rule.Message,
	}

	count, err := g.hit(ctx, decision.Key, now, rule.Window, bucket)
	if err != nil {
		g.logger.WithError(err).WithFields(logrus.Fields{
			"bucket": bucket,
			"key":    decision.Key,
		}).Warn("rate limit store unavailable, failing open")
		prometheus.RateLimitFailOpen.WithLabelValues(bucket.String()).Inc()
		prometheus.RateLimitDecisions.WithLabelValues(bucket.String(), "failed_open").Inc()
		decision.FailedOpen = true
		decision.RemainingRequests = int64(rule.Max)
		return decision, nil
	}

	decision.TotalRequests = count
	decision.RemainingRequests = int64(rule.Max) - count
	if decision.Allowed() {
		prometheus.RateLimitDecisions.WithLabelValues(bucket.String(), "allowed").Inc()
	} else {
		prometheus.RateLimitDecisions.WithLabelValues(bucket.String(), "rejected").Inc()
		g.logger.WithFields(logrus.Fields{
			"bucket": bucket,
			"key":    decision.Key,
			"total":  count,
			"limit":  rule.Max,
		}).Debug("rate limit exceeded")
	}
	return decision, nil
}

func (g *guard) hit(ctx context.Context, key string, now time.Time, window time.Duration, bucket domain.Bucket) (int64, error) {
	if g.storeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.storeTimeout)
		defer cancel()
	}
	start := time.Now()
	count, err := g.store.Hit(ctx, key, now, window)
	prometheus.RateLimitStoreLatency.WithLabelValues(bucket.String()).
		Observe(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		if errors.Is(err, domain.ErrCounterStoreUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrCounterStoreUnavailable, err)
	}
	return count, nil
}

func (g *guard) ResetRateLimit(ctx context.Context, key string) (bool, error) {
	if _, ok := domain.BucketFromKey(key); !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
	}
	existed, err := g.store.Reset(ctx, key)
	if err != nil {
		return false, err
	}
	g.logger.WithFields(logrus.Fields{"key": key, "existed": existed}).Info("rate limit counter reset")
	return existed, nil
}

func (g *guard) GetStatistics(ctx context.Context) (map[domain.Bucket]domain.BucketStats, error) {
	return g.store.Stats(ctx)
}

// DecisionError returns ErrRateLimitExceeded for a rejected decision.
func DecisionError(d domain.Decision) error {
	if d.Allowed() {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, d.Bucket)
}
