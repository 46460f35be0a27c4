package migrations

import (
	"github.com/fanzplatform/fanzcore/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260101_create_notifications",
		Name: "Create notifications table",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS notifications (
					id           UUID PRIMARY KEY,
					recipient_id TEXT NOT NULL,
					type         VARCHAR(64) NOT NULL,
					title        TEXT NOT NULL,
					body         TEXT NOT NULL,
					action_ref   TEXT,
					metadata     JSONB NOT NULL DEFAULT '{}'::jsonb,
					is_read      BOOLEAN NOT NULL DEFAULT FALSE,
					created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_notifications_recipient_created
				ON notifications (recipient_id, created_at DESC);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_notifications_recipient_unread
				ON notifications (recipient_id) WHERE is_read = FALSE;
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS notifications;`).Error
		},
	})
}
