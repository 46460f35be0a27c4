package ratelimit

import (
	"strings"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
)

var (
	authMarkers    = []string{"/auth/", "/login", "/register"}
	paymentMarkers = []string{"/payment/", "/billing/", "/subscribe/"}
	uploadMarkers  = []string{"/upload", "/media", "/content"}
	searchMarkers  = []string{"/search", "/discover"}
)

type Classifier interface {
	Classify(req domain.Request) domain.Bucket
}

type classifier struct {
	adultPlatforms map[string]struct{}
}

func NewClassifier(adultPlatforms []string) Classifier {
	set := make(map[string]struct{}, len(adultPlatforms))
	for _, p := range adultPlatforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return &classifier{adultPlatforms: set}
}

// Classify applies the bucket rules in order; the first match wins.
func (c *classifier) Classify(req domain.Request) domain.Bucket {
	path := strings.ToLower(req.Path)
	switch {
	case containsAny(path, authMarkers):
		return domain.BucketAuthentication
	case containsAny(path, paymentMarkers):
		return domain.BucketPayment
	case isWrite(req.Method) && containsAny(path, uploadMarkers):
		return domain.BucketUpload
	case containsAny(path, searchMarkers):
		return domain.BucketSearch
	case c.isAdultPlatform(req.Platform):
		return domain.BucketAdultContent
	default:
		return domain.BucketGeneral
	}
}

func (c *classifier) isAdultPlatform(platform string) bool {
	if platform == "" {
		return false
	}
	_, ok := c.adultPlatforms[strings.ToLower(strings.TrimSpace(platform))]
	return ok
}

func isWrite(method string) bool {
	return strings.EqualFold(method, "POST") || strings.EqualFold(method, "PUT")
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
