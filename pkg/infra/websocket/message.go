package websocket

import (
	"time"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
)

const (
	MessageTypeNotification = "notification"
	MessageTypeAnnouncement = "announcement"
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeError        = "error"
)

// Message is the envelope written to realtime clients.
type Message struct {
	Type         string                     `json:"type"`
	Notification *notification.Notification `json:"notification,omitempty"`
	Announcement *Announcement              `json:"announcement,omitempty"`
	Error        string                     `json:"error,omitempty"`
}

type Announcement struct {
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	SentAt   time.Time              `json:"sentAt"`
}

func NotificationMessage(n *notification.Notification) Message {
	return Message{Type: MessageTypeNotification, Notification: n}
}

func AnnouncementMessage(a *Announcement) Message {
	return Message{Type: MessageTypeAnnouncement, Announcement: a}
}
