package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	GetVersionHandler Handler

	// Notifications
	ListNotificationsHandler      Handler
	UnreadCountHandler            Handler
	MarkReadHandler               Handler
	MarkAllReadHandler            Handler
	DeleteNotificationHandler     Handler
	DeleteAllNotificationsHandler Handler
	GetPreferencesHandler         Handler
	UpdatePreferencesHandler      Handler

	// Admin
	CreateNotificationHandler Handler
	NotifyEventHandler        Handler
	BroadcastHandler          Handler
	ResetRateLimitHandler     Handler
	RateLimitStatsHandler     Handler
}
