package notification

// Type is the notification kind. Values outside the known set are accepted
// and have no preference toggle.
type Type string

const (
	TypeTip          Type = "tip"
	TypeSubscription Type = "subscription"
	TypeMessage      Type = "message"
	TypeLike         Type = "like"
	TypeComment      Type = "comment"
	TypeAchievement  Type = "achievement"
	TypeMilestone    Type = "milestone"
	TypeSystem       Type = "system"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) Known() bool {
	switch t {
	case TypeTip, TypeSubscription, TypeMessage, TypeLike,
		TypeComment, TypeAchievement, TypeMilestone, TypeSystem:
		return true
	}
	return false
}
