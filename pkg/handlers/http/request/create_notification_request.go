package request

import (
	"fmt"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
)

type CreateNotificationRequest struct {
	RecipientID string                 `json:"recipientId"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Body        string                 `json:"body"`
	ActionRef   string                 `json:"actionRef,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (r *CreateNotificationRequest) Validate() error {
	if r.RecipientID == "" {
		return fmt.Errorf("recipientId is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (r *CreateNotificationRequest) Draft() notification.Draft {
	return notification.Draft{
		RecipientID: r.RecipientID,
		Type:        notification.Type(r.Type),
		Title:       r.Title,
		Body:        r.Body,
		ActionRef:   r.ActionRef,
		Metadata:    r.Metadata,
	}
}
