package request

import "fmt"

type BroadcastRequest struct {
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (r *BroadcastRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
