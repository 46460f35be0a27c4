package common

const (
	PlatformHeader  = "X-Platform"
	ForwardedHeader = "X-Forwarded-For"
	RealIPHeader    = "X-Real-IP"
)
