package notification

import (
	"time"
)

// Preferences holds a user's delivery toggles and optional quiet hours.
type Preferences struct {
	UserID               string    `json:"userId" gorm:"type:text;primaryKey"`
	TipsEnabled          bool      `json:"tipsEnabled" gorm:"not null"`
	SubscriptionsEnabled bool      `json:"subscriptionsEnabled" gorm:"not null"`
	MessagesEnabled      bool      `json:"messagesEnabled" gorm:"not null"`
	LikesEnabled         bool      `json:"likesEnabled" gorm:"not null"`
	CommentsEnabled      bool      `json:"commentsEnabled" gorm:"not null"`
	AchievementsEnabled  bool      `json:"achievementsEnabled" gorm:"not null"`
	SystemEnabled        bool      `json:"systemEnabled" gorm:"not null"`
	QuietHoursStart      *string   `json:"quietHoursStart" gorm:"type:varchar(5)"`
	QuietHoursEnd        *string   `json:"quietHoursEnd" gorm:"type:varchar(5)"`
	UpdatedAt            time.Time `json:"updatedAt" gorm:"not null"`
}

func (p *Preferences) TableName() string {
	return "notification_preferences"
}

func DefaultPreferences(userID string, now time.Time) *Preferences {
	return &Preferences{
		UserID:               userID,
		TipsEnabled:          true,
		SubscriptionsEnabled: true,
		MessagesEnabled:      true,
		LikesEnabled:         true,
		CommentsEnabled:      true,
		AchievementsEnabled:  true,
		SystemEnabled:        true,
		UpdatedAt:            now.UTC(),
	}
}

// Enabled reports the toggle for t. Milestones share the achievements
// toggle; types without a toggle are always enabled.
func (p *Preferences) Enabled(t Type) bool {
	switch t {
	case TypeTip:
		return p.TipsEnabled
	case TypeSubscription:
		return p.SubscriptionsEnabled
	case TypeMessage:
		return p.MessagesEnabled
	case TypeLike:
		return p.LikesEnabled
	case TypeComment:
		return p.CommentsEnabled
	case TypeAchievement, TypeMilestone:
		return p.AchievementsEnabled
	case TypeSystem:
		return p.SystemEnabled
	default:
		return true
	}
}

// InQuietHours is false unless both bounds are set and parse.
func (p *Preferences) InQuietHours(now time.Time) bool {
	if p.QuietHoursStart == nil || p.QuietHoursEnd == nil {
		return false
	}
	start, err := ParseClock(*p.QuietHoursStart)
	if err != nil {
		return false
	}
	end, err := ParseClock(*p.QuietHoursEnd)
	if err != nil {
		return false
	}
	return InWindow(start, end, ClockOf(now))
}

// Eligible decides live delivery of a record of type t at now.
func (p *Preferences) Eligible(t Type, now time.Time) bool {
	if p.InQuietHours(now) {
		return false
	}
	return p.Enabled(t)
}

// PreferencesPatch is a partial update. Nil fields are left as they are;
// an empty quiet-hours string clears that bound.
type PreferencesPatch struct {
	TipsEnabled          *bool   `json:"tipsEnabled"`
	SubscriptionsEnabled *bool   `json:"subscriptionsEnabled"`
	MessagesEnabled      *bool   `json:"messagesEnabled"`
	LikesEnabled         *bool   `json:"likesEnabled"`
	CommentsEnabled      *bool   `json:"commentsEnabled"`
	AchievementsEnabled  *bool   `json:"achievementsEnabled"`
	SystemEnabled        *bool   `json:"systemEnabled"`
	QuietHoursStart      *string `json:"quietHoursStart"`
	QuietHoursEnd        *string `json:"quietHoursEnd"`
}

// Validate checks quiet-hours values without touching any preferences.
func (pp PreferencesPatch) Validate() error {
	for _, v := range []*string{pp.QuietHoursStart, pp.QuietHoursEnd} {
		if v == nil || *v == "" {
			continue
		}
		if _, err := ParseClock(*v); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into p and stamps UpdatedAt.
func (pp PreferencesPatch) Apply(p *Preferences, now time.Time) error {
	if err := pp.Validate(); err != nil {
		return err
	}
	setBool(&p.TipsEnabled, pp.TipsEnabled)
	setBool(&p.SubscriptionsEnabled, pp.SubscriptionsEnabled)
	setBool(&p.MessagesEnabled, pp.MessagesEnabled)
	setBool(&p.LikesEnabled, pp.LikesEnabled)
	setBool(&p.CommentsEnabled, pp.CommentsEnabled)
	setBool(&p.AchievementsEnabled, pp.AchievementsEnabled)
	setBool(&p.SystemEnabled, pp.SystemEnabled)
	setClock(&p.QuietHoursStart, pp.QuietHoursStart)
	setClock(&p.QuietHoursEnd, pp.QuietHoursEnd)
	p.UpdatedAt = now.UTC()
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setClock(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	s := *v
	*dst = &s
}
