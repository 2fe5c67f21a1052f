package models

import "time"

// Reaction holds one reaction symbol on a chat message and the distinct users
// who applied it, in application order.
type Reaction struct {
	Emoji string   `json:"emoji"`
	Users []string `json:"users"`
}

// ChatMessage represents one message in the session chat log. Reactions keep
// the first-use order of their symbols.
type ChatMessage struct {
	ID        string     `json:"id"`
	UserName  string     `json:"user_name"`
	Message   string     `json:"message"`
	Segment   string     `json:"user_segment,omitempty"`
	Reactions []Reaction `json:"reactions"`
	CreatedAt time.Time  `json:"timestamp"`
}

// HasReaction reports whether user already applied emoji to this message.
func (m *ChatMessage) HasReaction(emoji, user string) bool {
	for _, r := range m.Reactions {
		if r.Emoji != emoji {
			continue
		}
		for _, u := range r.Users {
			if u == user {
				return true
			}
		}
	}
	return false
}
