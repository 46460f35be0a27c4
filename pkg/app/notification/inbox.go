package notification

import (
	"context"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/google/uuid"
)

type Page struct {
	Notifications []domain.Notification `json:"notifications"`
	Page          int                   `json:"page"`
	Limit         int                   `json:"limit"`
	Total         int64                 `json:"total"`
}

// Inbox is the read/mark/delete surface of a user's own notifications.
//
//go:generate mockery --name=Inbox --dir=. --output=./mocks --filename=inbox_mock.go --case=underscore --with-expecter
type Inbox interface {
	List(ctx context.Context, userID string, page, limit int) (*Page, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

type inbox struct {
	repo         domain.Repository
	storeTimeout time.Duration
	defaultLimit int
	maxLimit     int
}

func NewInbox(repo domain.Repository, storeTimeout time.Duration, defaultLimit, maxLimit int) Inbox {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &inbox{
		repo:         repo,
		storeTimeout: storeTimeout,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// List pages newest first. Pages start at 1; out-of-range values are
// clamped rather than rejected.
func (i *inbox) List(ctx context.Context, userID string, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = i.defaultLimit
	case limit > i.maxLimit:
		limit = i.maxLimit
	}

	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	items, total, err := i.repo.ListByRecipient(ctx, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return &Page{
		Notifications: items,
		Page:          page,
		Limit:         limit,
		Total:         total,
	}, nil
}

func (i *inbox) UnreadCount(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.CountUnread(ctx, userID)
}

func (i *inbox) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.MarkRead(ctx, userID, id)
}

func (i *inbox) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.MarkAllRead(ctx, userID)
}

func (i *inbox) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.Delete(ctx, userID, id)
}

func (i *inbox) DeleteAll(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, i.storeTimeout)
	defer cancel()
	return i.repo.DeleteAll(ctx, userID)
}
