package migrations

import (
	"github.com/fanzplatform/fanzcore/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20260102_create_notification_preferences",
		Name: "Create notification_preferences table",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS notification_preferences (
					user_id               TEXT PRIMARY KEY,
					tips_enabled          BOOLEAN NOT NULL DEFAULT TRUE,
					subscriptions_enabled BOOLEAN NOT NULL DEFAULT TRUE,
					messages_enabled      BOOLEAN NOT NULL DEFAULT TRUE,
					likes_enabled         BOOLEAN NOT NULL DEFAULT TRUE,
					comments_enabled      BOOLEAN NOT NULL DEFAULT TRUE,
					achievements_enabled  BOOLEAN NOT NULL DEFAULT TRUE,
					system_enabled        BOOLEAN NOT NULL DEFAULT TRUE,
					quiet_hours_start     VARCHAR(5) CHECK (quiet_hours_start ~ '^([01][0-9]|2[0-3]):[0-5][0-9]$'),
					quiet_hours_end       VARCHAR(5) CHECK (quiet_hours_end ~ '^([01][0-9]|2[0-3]):[0-5][0-9]$'),
					updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS notification_preferences;`).Error
		},
	})
}
