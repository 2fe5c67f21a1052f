package session

import (
	"strings"

	"github.com/event-booster/backend/internal/models"
)

// AddMessage appends a chat message and logs a "chat" engagement event for the
// sender. Returns the message id.
func (e *Engine) AddMessage(userName, message, segment string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := &models.ChatMessage{
		ID:        e.nextMessageID(),
		UserName:  userName,
		Message:   message,
		Segment:   segment,
		CreatedAt: e.now(),
	}
	e.messages = append(e.messages, m)
	e.trackEventLocked(userName, models.EventChat, map[string]interface{}{
		"message_length": len(message),
	})
	return m.ID
}

// AddReaction applies a reaction to a chat message. The first time a given
// user applies a given emoji to a given message it also logs a "reaction"
// engagement event; repeating the same triple is a no-op. Returns false for an
// unknown message id.
func (e *Engine) AddReaction(messageID, emoji, userName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, m := range e.messages {
		if m.ID != messageID {
			continue
		}
		if m.HasReaction(emoji, userName) {
			return true
		}
		added := false
		for i := range m.Reactions {
			if m.Reactions[i].Emoji == emoji {
				m.Reactions[i].Users = append(m.Reactions[i].Users, userName)
				added = true
				break
			}
		}
		if !added {
			m.Reactions = append(m.Reactions, models.Reaction{Emoji: emoji, Users: []string{userName}})
		}
		e.trackEventLocked(userName, models.EventReaction, map[string]interface{}{
			"reaction_type": emoji,
		})
		return true
	}
	return false
}

// Messages returns up to limit chat messages, newest first.
func (e *Engine) Messages(limit int) []models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.ChatMessage, 0, len(e.messages))
	for i := len(e.messages) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, copyMessage(e.messages[i]))
	}
	return out
}

// WordCloudText joins every chat message and Q&A question into one blob for
// the word-cloud widget.
func (e *Engine) WordCloudText() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	parts := make([]string, 0, len(e.messages)+len(e.questions))
	for _, m := range e.messages {
		parts = append(parts, m.Message)
	}
	for _, q := range e.questions {
		parts = append(parts, q.Question)
	}
	return strings.Join(parts, " ")
}

func copyMessage(m *models.ChatMessage) models.ChatMessage {
	c := *m
	c.Reactions = make([]models.Reaction, len(m.Reactions))
	for i, r := range m.Reactions {
		c.Reactions[i] = models.Reaction{Emoji: r.Emoji, Users: append([]string(nil), r.Users...)}
	}
	return c
}
