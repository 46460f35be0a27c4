package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists notification records. Every read and mutation is
// scoped to the recipient; a record owned by someone else is not found.
//
//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=notification_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID string, offset, limit int) ([]Notification, int64, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, recipientID string, id uuid.UUID) error
	DeleteAll(ctx context.Context, recipientID string) (int64, error)
}

//go:generate mockery --name=PreferencesRepository --dir=. --output=./mocks --filename=preferences_repository_mock.go --case=underscore --with-expecter
type PreferencesRepository interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
	// CreateDefault inserts default preferences unless a row exists and
	// returns whatever row is stored afterwards.
	CreateDefault(ctx context.Context, userID string) (*Preferences, error)
	Save(ctx context.Context, p *Preferences) error
}
