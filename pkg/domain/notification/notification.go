package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification is one persisted record addressed to a single recipient.
type Notification struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	RecipientID string            `json:"recipientId" gorm:"type:text;not null;index:idx_notifications_recipient_created,priority:1"`
	Type        Type              `json:"type" gorm:"type:varchar(64);not null"`
	Title       string            `json:"title" gorm:"type:text;not null"`
	Body        string            `json:"body" gorm:"type:text;not null"`
	ActionRef   *string           `json:"actionRef,omitempty" gorm:"type:text"`
	Metadata    datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
	IsRead      bool              `json:"isRead" gorm:"not null;default:false"`
	CreatedAt   time.Time         `json:"createdAt" gorm:"not null;index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Metadata == nil {
		n.Metadata = datatypes.JSONMap{}
	}
	return nil
}

func (n *Notification) TableName() string {
	return "notifications"
}

// Draft carries the caller-supplied fields of a notification to create.
type Draft struct {
	RecipientID string
	Type        Type
	Title       string
	Body        string
	ActionRef   string
	Metadata    map[string]interface{}
}

func (d Draft) Validate() error {
	if d.RecipientID == "" || d.Type == "" || d.Title == "" {
		return ErrInvalidNotification
	}
	return nil
}

// NewNotification builds an unread record from a draft.
func NewNotification(d Draft, now time.Time) *Notification {
	n := &Notification{
		ID:          uuid.New(),
		RecipientID: d.RecipientID,
		Type:        d.Type,
		Title:       d.Title,
		Body:        d.Body,
		Metadata:    datatypes.JSONMap{},
		CreatedAt:   now.UTC(),
	}
	if d.ActionRef != "" {
		ref := d.ActionRef
		n.ActionRef = &ref
	}
	for k, v := range d.Metadata {
		n.Metadata[k] = v
	}
	return n
}
