package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferencesRepository struct {
	db *gorm.DB
}

func NewPreferencesRepository(db *gorm.DB) notification.PreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

func (r *preferencesRepository) Get(ctx context.Context, userID string) (*notification.Preferences, error) {
	var prefs notification.Preferences
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", notification.ErrPreferencesNotFound, userID)
		}
		return nil, persistenceError("get preferences", err)
	}
	return &prefs, nil
}

// CreateDefault tolerates a concurrent creator: the insert is a no-op on
// conflict and the stored row is read back.
func (r *preferencesRepository) CreateDefault(ctx context.Context, userID string) (*notification.Preferences, error) {
	defaults := notification.DefaultPreferences(userID, time.Now())
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(defaults).Error; err != nil {
		return nil, persistenceError("create default preferences", err)
	}
	return r.Get(ctx, userID)
}

func (r *preferencesRepository) Save(ctx context.Context, p *notification.Preferences) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"tips_enabled", "subscriptions_enabled", "messages_enabled",
				"likes_enabled", "comments_enabled", "achievements_enabled",
				"system_enabled", "quiet_hours_start", "quiet_hours_end", "updated_at",
			}),
		}).
		Create(p).Error; err != nil {
		return persistenceError("save preferences", err)
	}
	return nil
}
