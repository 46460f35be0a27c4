package middleware

import (
	"strconv"
	"strings"
	"time"

	appratelimit "github.com/fanzplatform/fanzcore/pkg/app/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/common"
	"github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRateLimitType      = "X-RateLimit-Type"
	HeaderRetryAfter         = "Retry-After"
)

type RateLimitOpts struct {
	PlatformHeader string
	SkipPaths      []string
}

type rateLimitMiddleware struct {
	logger         *logrus.Logger
	guard          appratelimit.Guard
	jwtManager     jwt.Manager
	platformHeader string
	skip           map[string]struct{}
}

// NewRateLimitMiddleware runs the guard on every request outside the skip
// list. The caller is taken from an earlier auth middleware when present,
// otherwise from a valid bearer token; failing both, the request is keyed
// as anonymous. jwtManager may be nil.
func NewRateLimitMiddleware(
	logger *logrus.Logger,
	guard appratelimit.Guard,
	jwtManager jwt.Manager,
	opts RateLimitOpts,
) Middleware {
	header := opts.PlatformHeader
	if header == "" {
		header = common.PlatformHeader
	}
	skip := make(map[string]struct{}, len(opts.SkipPaths))
	for _, p := range opts.SkipPaths {
		skip[p] = struct{}{}
	}
	return &rateLimitMiddleware{
		logger:         logger,
		guard:          guard,
		jwtManager:     jwtManager,
		platformHeader: header,
		skip:           skip,
	}
}

func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := m.skip[c.Path()]; ok {
			return c.Next()
		}

		req := ratelimit.Request{
			Method:   c.Method(),
			Path:     c.Path(),
			ClientIP: ClientIP(c),
			UserID:   m.userID(c),
			Platform: strings.TrimSpace(c.Get(m.platformHeader)),
		}
		if req.Platform != "" {
			c.Locals(common.PlatformContextKey, strings.ToLower(req.Platform))
		}

		decision, err := m.guard.Evaluate(c.UserContext(), req)
		if err != nil {
			return err
		}
		writeRateLimitHeaders(c, decision)

		if decision.Allowed() {
			return c.Next()
		}

		m.logger.WithFields(logrus.Fields{
			"bucket":    decision.Bucket,
			"client_ip": req.ClientIP,
			"user_id":   req.UserID,
			"path":      req.Path,
			"trace_id":  traceID(c),
		}).Info("request rate limited")

		c.Set(HeaderRetryAfter, strconv.Itoa(decision.RetryAfterSeconds))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":      "Too Many Requests",
			"message":    decision.Message,
			"type":       decision.Bucket,
			"limit":      decision.Limit,
			"remaining":  0,
			"resetTime":  decision.ResetTime.UTC().Format(time.RFC3339),
			"retryAfter": decision.RetryAfterSeconds,
		})
	}
}

func (m *rateLimitMiddleware) userID(c *fiber.Ctx) string {
	if id := CallerID(c); id != "" {
		return id
	}
	if m.jwtManager == nil {
		return ""
	}
	token := bearerToken(c)
	if token == "" {
		return ""
	}
	claims, err := m.jwtManager.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.UserID
}

func writeRateLimitHeaders(c *fiber.Ctx, d ratelimit.Decision) {
	c.Set(HeaderRateLimitLimit, strconv.Itoa(d.Limit))
	c.Set(HeaderRateLimitRemaining, strconv.FormatInt(d.DisplayRemaining(), 10))
	c.Set(HeaderRateLimitReset, d.ResetTime.UTC().Format(time.RFC3339))
	c.Set(HeaderRateLimitType, string(d.Bucket))
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// socket address.
func ClientIP(c *fiber.Ctx) string {
	if xff := c.Get(common.ForwardedHeader); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.Get(common.RealIPHeader)); ip != "" {
		return ip
	}
	return c.IP()
}
