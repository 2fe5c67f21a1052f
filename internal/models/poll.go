package models

import "time"

// Poll represents a live poll in a session. Options keep their creation order;
// Responses always contains every option, starting at zero.
type Poll struct {
	ID        string                    `json:"id"`
	Question  string                    `json:"question"`
	Options   []string                  `json:"options"`
	Type      string                    `json:"type"`
	Responses map[string]int            `json:"responses"`
	Total     int                       `json:"total_responses"`
	Active    bool                      `json:"is_active"`
	Segments  map[string]map[string]int `json:"segment_data,omitempty"`
	CreatedAt time.Time                 `json:"created_at"`
}

// PollResults is the computed snapshot returned for a poll.
type PollResults struct {
	Question    string                    `json:"question"`
	Responses   map[string]int            `json:"responses"`
	Total       int                       `json:"total_responses"`
	Percentages map[string]float64        `json:"percentages"`
	Segments    map[string]map[string]int `json:"segments,omitempty"`
}
