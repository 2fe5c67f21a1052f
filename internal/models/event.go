package models

import "time"

// Known engagement event types. The engine accepts arbitrary type strings;
// these are the ones carrying a specific score weight.
const (
	EventClick        = "click"
	EventPollResponse = "poll_response"
	EventQuestion     = "question"
	EventChat         = "chat"
	EventReaction     = "reaction"
	EventShare        = "share"
)

// EngagementEvent is a single timestamped interaction record. The event log is
// append-only; events are never mutated or deleted.
type EngagementEvent struct {
	UserID    string                 `json:"user_id"`
	Type      string                 `json:"event_type"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// Segment returns the user_segment tag carried in the event data, or
// "Unknown" for unsegmented events.
func (e EngagementEvent) Segment() string {
	if s, ok := e.Data["user_segment"].(string); ok && s != "" {
		return s
	}
	return "Unknown"
}
