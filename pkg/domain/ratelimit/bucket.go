package ratelimit

import (
	"strings"
	"time"
)

// Bucket is a named rate-limit category.
type Bucket string

const (
	BucketGeneral        Bucket = "general"
	BucketAdultContent   Bucket = "adultContent"
	BucketAuthentication Bucket = "authentication"
	BucketPayment        Bucket = "payment"
	BucketUpload         Bucket = "upload"
	BucketSearch         Bucket = "search"
)

// Buckets lists every bucket in classification order.
var Buckets = []Bucket{
	BucketAuthentication,
	BucketPayment,
	BucketUpload,
	BucketSearch,
	BucketAdultContent,
	BucketGeneral,
}

func (b Bucket) String() string {
	return string(b)
}

// ParseBucket matches case-insensitively, so config keys lower-cased by
// viper still resolve.
func ParseBucket(s string) (Bucket, bool) {
	for _, b := range Buckets {
		if strings.EqualFold(string(b), s) {
			return b, true
		}
	}
	return "", false
}

type Rule struct {
	Window  time.Duration
	Max     int
	Message string
}

// RetryAfterSeconds is the window rounded up to whole seconds.
func (r Rule) RetryAfterSeconds() int {
	secs := r.Window / time.Second
	if r.Window%time.Second != 0 {
		secs++
	}
	return int(secs)
}

type Rules map[Bucket]Rule

func DefaultRules() Rules {
	return Rules{
		BucketGeneral: {
			Window:  15 * time.Minute,
			Max:     1000,
			Message: "Too many requests, please try again later.",
		},
		BucketAdultContent: {
			Window:  15 * time.Minute,
			Max:     500,
			Message: "Too many requests to adult content, please slow down.",
		},
		BucketAuthentication: {
			Window:  15 * time.Minute,
			Max:     10,
			Message: "Too many authentication attempts, please try again later.",
		},
		BucketPayment: {
			Window:  time.Hour,
			Max:     50,
			Message: "Too many payment requests, please try again later.",
		},
		BucketUpload: {
			Window:  15 * time.Minute,
			Max:     100,
			Message: "Too many uploads, please try again later.",
		},
		BucketSearch: {
			Window:  time.Minute,
			Max:     60,
			Message: "Too many search requests, please slow down.",
		},
	}
}

// Merge returns a copy of r with the non-zero fields of overrides applied.
func (r Rules) Merge(overrides Rules) Rules {
	out := make(Rules, len(r))
	for b, rule := range r {
		out[b] = rule
	}
	for b, o := range overrides {
		rule := out[b]
		if o.Window > 0 {
			rule.Window = o.Window
		}
		if o.Max > 0 {
			rule.Max = o.Max
		}
		if o.Message != "" {
			rule.Message = o.Message
		}
		out[b] = rule
	}
	return out
}
