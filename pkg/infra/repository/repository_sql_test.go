package repository

import (
	"testing"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=fanz dbname=fanz sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestOwnedScopesEveryMutation(t *testing.T) {
	db := dryRunDB(t)
	id := uuid.MustParse("6f1c2a9e-0d4b-4b7e-9a51-1c2d3e4f5a6b")

	markRead := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return owned(tx, "creator-1").Where("id = ?", id).Update("is_read", true)
	})
	assert.Contains(t, markRead, `UPDATE "notifications"`)
	assert.Contains(t, markRead, "recipient_id = 'creator-1'")
	assert.Contains(t, markRead, id.String())

	list := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []notification.Notification
		return owned(tx, "creator-1").Order("created_at DESC").Offset(20).Limit(10).Find(&out)
	})
	assert.Contains(t, list, "recipient_id = 'creator-1'")
	assert.Contains(t, list, "ORDER BY created_at DESC")
	assert.Contains(t, list, "LIMIT 10 OFFSET 20")

	del := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("recipient_id = ? AND id = ?", "creator-1", id).Delete(&notification.Notification{})
	})
	assert.Contains(t, del, `DELETE FROM "notifications"`)
	assert.Contains(t, del, "recipient_id = 'creator-1'")
}

func TestCreateDefaultIsConflictSafe(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(notification.DefaultPreferences("fan-1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	})
	assert.Contains(t, sql, `INSERT INTO "notification_preferences"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id") DO NOTHING`)
}
