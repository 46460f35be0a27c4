package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	appratelimit "github.com/fanzplatform/fanzcore/pkg/app/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/app/ratelimit/mocks"
	"github.com/fanzplatform/fanzcore/pkg/config"
	"github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/auth/jwt"
	infraratelimit "github.com/fanzplatform/fanzcore/pkg/infra/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newJwt() jwt.Manager {
	return jwt.NewJwtManager(&config.ServerConfig{SecretKey: "middleware-secret"})
}

func newRateLimitedApp(guard appratelimit.Guard, jwtManager jwt.Manager) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewRateLimitMiddleware(newLogger(), guard, jwtManager, middleware.RateLimitOpts{
		SkipPaths: []string{"/health"},
	}).Middleware())
	ok := func(c *fiber.Ctx) error { return c.SendString("OK") }
	app.Post("/api/v1/auth/login", ok)
	app.Get("/api/v1/feed", ok)
	app.Get("/health", ok)
	return app
}

func TestRateLimit_AuthenticationBoundary(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	guard := appratelimit.NewGuard(
		newLogger(),
		infraratelimit.NewMemoryStore(clock),
		appratelimit.NewClassifier(nil),
		ratelimit.DefaultRules(),
		250*time.Millisecond,
		&appratelimit.GuardOpts{TimeProvider: clock},
	)
	app := newRateLimitedApp(guard, nil)

	for i := 1; i <= 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "request %d", i)
		assert.Equal(t, "10", resp.Header.Get(middleware.HeaderRateLimitLimit))
		assert.Equal(t, strconv.Itoa(10-i), resp.Header.Get(middleware.HeaderRateLimitRemaining))
		assert.Equal(t, "authentication", resp.Header.Get(middleware.HeaderRateLimitType))
		assert.Equal(t, "2026-06-01T12:15:00Z", resp.Header.Get(middleware.HeaderRateLimitReset))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "900", resp.Header.Get(middleware.HeaderRetryAfter))
	assert.Equal(t, "0", resp.Header.Get(middleware.HeaderRateLimitRemaining))

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Too Many Requests", body["error"])
	assert.Equal(t, "authentication", body["type"])
	assert.Equal(t, "Too many authentication attempts, please try again later.", body["message"])
	assert.Equal(t, float64(10), body["limit"])
	assert.Equal(t, float64(0), body["remaining"])
	assert.Equal(t, float64(900), body["retryAfter"])
	assert.Equal(t, "2026-06-01T12:15:00Z", body["resetTime"])

	// a different client ip has its own window
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimit_FailedOpenKeepsHeaders(t *testing.T) {
	guard := mocks.NewGuard(t)
	guard.EXPECT().Evaluate(mock.Anything, mock.Anything).Return(ratelimit.Decision{
		Bucket:            ratelimit.BucketGeneral,
		Limit:             1000,
		RemainingRequests: 1000,
		ResetTime:         time.Date(2026, 6, 1, 12, 15, 0, 0, time.UTC),
		FailedOpen:        true,
	}, nil).Once()

	resp, err := newRateLimitedApp(guard, nil).Test(httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "1000", resp.Header.Get(middleware.HeaderRateLimitRemaining))
	assert.Equal(t, "general", resp.Header.Get(middleware.HeaderRateLimitType))
}

func TestRateLimit_SkipPaths(t *testing.T) {
	guard := mocks.NewGuard(t)

	resp, err := newRateLimitedApp(guard, nil).Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(middleware.HeaderRateLimitLimit))
}

func TestRateLimit_RequestFields(t *testing.T) {
	jwtManager := newJwt()
	token, err := jwtManager.CreateToken("fan-9", jwt.RoleUser, time.Hour)
	require.NoError(t, err)

	guard := mocks.NewGuard(t)
	guard.EXPECT().Evaluate(mock.Anything, ratelimit.Request{
		Method:   http.MethodGet,
		Path:     "/api/v1/feed",
		ClientIP: "203.0.113.7",
		UserID:   "fan-9",
		Platform: "BoyFanz",
	}).Return(ratelimit.Decision{Bucket: ratelimit.BucketAdultContent, Limit: 500, RemainingRequests: 499}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("X-Real-IP", "10.0.0.2")
	req.Header.Set("X-Platform", "BoyFanz")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := newRateLimitedApp(guard, jwtManager).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimit_InvalidTokenIsAnonymous(t *testing.T) {
	guard := mocks.NewGuard(t)
	guard.EXPECT().Evaluate(mock.Anything, mock.MatchedBy(func(r ratelimit.Request) bool {
		return r.UserID == "" && r.ClientIP == "10.0.0.2"
	})).Return(ratelimit.Decision{Bucket: ratelimit.BucketGeneral, Limit: 1000, RemainingRequests: 999}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := newRateLimitedApp(guard, newJwt()).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRateLimit_GuardErrorPropagates(t *testing.T) {
	guard := mocks.NewGuard(t)
	guard.EXPECT().Evaluate(mock.Anything, mock.Anything).
		Return(ratelimit.Decision{}, errors.New("no rule configured for bucket")).Once()

	resp, err := newRateLimitedApp(guard, nil).Test(httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
