package ratelimit

import (
	"strings"
	"time"
)

const (
	KeyPrefix     = "ratelimit:"
	AnonymousUser = "anonymous"
)

// Request is the slice of an inbound HTTP request the guard looks at.
type Request struct {
	Method   string
	Path     string
	ClientIP string
	UserID   string
	Platform string
}

// DeriveKey builds the counter key without the store prefix:
// {bucket}:{ip}:{user|anonymous}[:{platform}].
func DeriveKey(bucket Bucket, req Request) string {
	user := req.UserID
	if user == "" {
		user = AnonymousUser
	}
	var sb strings.Builder
	sb.Grow(len(bucket) + len(req.ClientIP) + len(user) + len(req.Platform) + 3)
	sb.WriteString(string(bucket))
	sb.WriteByte(':')
	sb.WriteString(req.ClientIP)
	sb.WriteByte(':')
	sb.WriteString(user)
	if req.Platform != "" {
		sb.WriteByte(':')
		sb.WriteString(strings.ToLower(req.Platform))
	}
	return sb.String()
}

// BucketFromKey reads the bucket segment of a prefixed or unprefixed key.
func BucketFromKey(key string) (Bucket, bool) {
	key = strings.TrimPrefix(key, KeyPrefix)
	name, _, found := strings.Cut(key, ":")
	if !found {
		return "", false
	}
	return ParseBucket(name)
}

type Decision struct {
	Bucket            Bucket
	Key               string
	Limit             int
	TotalRequests     int64
	RemainingRequests int64
	ResetTime         time.Time
	RetryAfterSeconds int
	Message           string
	FailedOpen        bool
}

func (d Decision) Allowed() bool {
	return d.RemainingRequests >= 0
}

// DisplayRemaining is the value advertised in X-RateLimit-Remaining.
func (d Decision) DisplayRemaining() int64 {
	if d.RemainingRequests < 0 {
		return 0
	}
	return d.RemainingRequests
}

type BucketStats struct {
	Keys          int   `json:"keys"`
	TotalRequests int64 `json:"totalRequests"`
}
