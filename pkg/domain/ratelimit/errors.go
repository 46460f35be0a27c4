package ratelimit

import "errors"

var (
	ErrRateLimitExceeded       = errors.New("rate limit exceeded")
	ErrCounterStoreUnavailable = errors.New("counter store unavailable")
	ErrInvalidKey              = errors.New("invalid rate limit key")
)
