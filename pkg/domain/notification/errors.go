package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPreferencesNotFound  = errors.New("notification preferences not found")
	ErrPersistence          = errors.New("notification persistence failed")
	ErrInvalidQuietHours    = errors.New("quiet hours must be HH:MM")
	ErrInvalidNotification  = errors.New("notification requires recipient, type and title")
)
