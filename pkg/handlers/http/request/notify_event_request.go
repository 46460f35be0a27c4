package request

import (
	"fmt"

	"github.com/fanzplatform/fanzcore/pkg/domain/notification"
)

// NotifyEventRequest carries a platform event that maps onto one of the
// formatted notification kinds. Which fields are read depends on the kind.
type NotifyEventRequest struct {
	RecipientID string  `json:"recipientId"`
	ActorName   string  `json:"actorName,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	RefID       string  `json:"refId,omitempty"`
	Tier        string  `json:"tier,omitempty"`
	Text        string  `json:"text,omitempty"`
	Name        string  `json:"name,omitempty"`
	Milestone   string  `json:"milestone,omitempty"`
	Value       int64   `json:"value,omitempty"`
	Title       string  `json:"title,omitempty"`
}

func (r *NotifyEventRequest) Validate(kind notification.Type) error {
	if r.RecipientID == "" {
		return fmt.Errorf("recipientId is required")
	}
	switch kind {
	case notification.TypeTip:
		if r.ActorName == "" || r.Amount <= 0 {
			return fmt.Errorf("tip requires actorName and a positive amount")
		}
	case notification.TypeSubscription, notification.TypeLike:
		if r.ActorName == "" {
			return fmt.Errorf("%s requires actorName", kind)
		}
	case notification.TypeMessage, notification.TypeComment:
		if r.ActorName == "" || r.RefID == "" {
			return fmt.Errorf("%s requires actorName and refId", kind)
		}
	case notification.TypeAchievement:
		if r.Name == "" {
			return fmt.Errorf("achievement requires name")
		}
	case notification.TypeMilestone:
		if r.Milestone == "" {
			return fmt.Errorf("milestone requires milestone")
		}
	case notification.TypeSystem:
		if r.Title == "" {
			return fmt.Errorf("system requires title")
		}
	default:
		return fmt.Errorf("unknown event kind %q", kind)
	}
	return nil
}
