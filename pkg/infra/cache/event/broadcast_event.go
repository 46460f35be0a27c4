package event

import "time"

type BroadcastEvent struct {
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	SentAt   time.Time              `json:"sent_at"`
}

func (e BroadcastEvent) Type() string {
	return BroadcastEventType
}
