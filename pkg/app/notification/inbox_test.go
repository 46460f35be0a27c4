package notification

import (
	"context"
	"testing"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/domain/notification/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInbox_ListClampsPaging(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantOffset, wantLim int
		wantPage            int
	}{
		{"defaults", 0, 0, 0, 20, 1},
		{"second page", 2, 10, 10, 10, 2},
		{"limit above max", 1, 500, 0, 100, 1},
		{"negative page", -3, 5, 0, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			repo.EXPECT().ListByRecipient(mock.Anything, "U", tt.wantOffset, tt.wantLim).
				Return(nil, 0, nil).Once()

			page, err := NewInbox(repo, time.Second, 20, 100).List(context.Background(), "U", tt.page, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLim, page.Limit)
			assert.NotNil(t, page.Notifications)
		})
	}
}

func TestInbox_ListReturnsTotal(t *testing.T) {
	repo := mocks.NewRepository(t)
	items := []domain.Notification{{ID: uuid.New(), RecipientID: "U", Type: domain.TypeLike, Title: "New like"}}
	repo.EXPECT().ListByRecipient(mock.Anything, "U", 0, 20).Return(items, int64(41), nil).Once()

	page, err := NewInbox(repo, 0, 20, 100).List(context.Background(), "U", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(41), page.Total)
	assert.Equal(t, items, page.Notifications)
}

func TestInbox_MutationsAreScopedToCaller(t *testing.T) {
	repo := mocks.NewRepository(t)
	id := uuid.New()
	inbox := NewInbox(repo, time.Second, 20, 100)
	ctx := context.Background()

	repo.EXPECT().MarkRead(mock.Anything, "U", id).Return(domain.ErrNotificationNotFound).Once()
	repo.EXPECT().Delete(mock.Anything, "U", id).Return(nil).Once()
	repo.EXPECT().MarkAllRead(mock.Anything, "U").Return(int64(3), nil).Once()
	repo.EXPECT().DeleteAll(mock.Anything, "U").Return(int64(7), nil).Once()
	repo.EXPECT().CountUnread(mock.Anything, "U").Return(int64(2), nil).Once()

	assert.ErrorIs(t, inbox.MarkRead(ctx, "U", id), domain.ErrNotificationNotFound)
	assert.NoError(t, inbox.Delete(ctx, "U", id))

	updated, err := inbox.MarkAllRead(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)

	deleted, err := inbox.DeleteAll(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	unread, err := inbox.UnreadCount(ctx, "U")
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
}

func TestInbox_CallsCarryDeadline(t *testing.T) {
	repo := mocks.NewRepository(t)
	repo.EXPECT().CountUnread(mock.Anything, "U").
		Run(func(ctx context.Context, _ string) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}).
		Return(int64(0), nil).Once()

	_, err := NewInbox(repo, 50*time.Millisecond, 20, 100).UnreadCount(context.Background(), "U")
	require.NoError(t, err)
}
