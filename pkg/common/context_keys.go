package common

type contextKey string

const (
	TraceIdKey         contextKey = "trace_id"
	UserIDContextKey   contextKey = "user_id"
	PlatformContextKey contextKey = "platform"
	ClaimsContextKey   contextKey = "claims"
	WsSemaphoreKey     contextKey = "ws_semaphore"
)
