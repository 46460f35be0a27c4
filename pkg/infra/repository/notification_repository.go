package repository

import (
	"context"
	"fmt"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &notificationRepository{
		db: db,
	}
}

// owned restricts a query to one recipient's records.
func owned(tx *gorm.DB, recipientID string) *gorm.DB {
	return tx.Model(&notification.Notification{}).Where("recipient_id = ?", recipientID)
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", notification.ErrPersistence, op, err)
}

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return persistenceError("create notification", err)
	}
	return nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, offset, limit int) ([]notification.Notification, int64, error) {
	var total int64
	if err := owned(r.db.WithContext(ctx), recipientID).Count(&total).Error; err != nil {
		return nil, 0, persistenceError("count notifications", err)
	}

	items := make([]notification.Notification, 0, limit)
	if total == 0 {
		return items, 0, nil
	}
	if err := owned(r.db.WithContext(ctx), recipientID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, persistenceError("list notifications", err)
	}
	return items, total, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := owned(r.db.WithContext(ctx), recipientID).
		Where("is_read = ?", false).
		Count(&count).Error; err != nil {
		return 0, persistenceError("count unread notifications", err)
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, recipientID string, id uuid.UUID) error {
	result := owned(r.db.WithContext(ctx), recipientID).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return persistenceError("mark notification read", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", notification.ErrNotificationNotFound, id)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := owned(r.db.WithContext(ctx), recipientID).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, persistenceError("mark all notifications read", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *notificationRepository) Delete(ctx context.Context, recipientID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("recipient_id = ? AND id = ?", recipientID, id).
		Delete(&notification.Notification{})
	if result.Error != nil {
		return persistenceError("delete notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", notification.ErrNotificationNotFound, id)
	}
	return nil
}

func (r *notificationRepository) DeleteAll(ctx context.Context, recipientID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Delete(&notification.Notification{})
	if result.Error != nil {
		return 0, persistenceError("delete notifications", result.Error)
	}
	return result.RowsAffected, nil
}
