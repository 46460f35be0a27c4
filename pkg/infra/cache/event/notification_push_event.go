package event

import (
	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
)

// NotificationPushEvent asks every instance to push a persisted record to
// the recipient's local connections.
type NotificationPushEvent struct {
	RecipientID  string                     `json:"recipient_id"`
	Notification *notification.Notification `json:"notification"`
}

func (e NotificationPushEvent) Type() string {
	return NotificationPushEventType
}
