// Package session owns all live-session state: polls, the Q&A queue, the chat
// log, and the append-only engagement event log, plus the real-time aggregates
// derived from them. One Engine instance belongs to exactly one session; a
// single mutex serializes every operation because poll tally and total
// increments must never interleave.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/event-booster/backend/internal/models"
)

// Engine is the in-memory live session engine. All aggregates (score, trend,
// heatmap, insights) are recomputed from the event log at query time rather
// than maintained incrementally; the log is small and session-scoped.
type Engine struct {
	mu        sync.Mutex
	polls     map[string]*models.Poll
	pollOrder []string
	questions []*models.Question
	messages  []*models.ChatMessage
	events    []models.EngagementEvent

	pollSeq int
	qaSeq   int
	chatSeq int

	now func() time.Time
}

// NewEngine creates an empty session engine.
func NewEngine() *Engine {
	return &Engine{
		polls: make(map[string]*models.Poll),
		now:   time.Now,
	}
}

// SetClock overrides the engine's time source. Used by tests to pin the
// score/heatmap/trend windows.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

func (e *Engine) nextPollID() string {
	e.pollSeq++
	return fmt.Sprintf("poll_%d_%d", e.pollSeq, e.now().Unix())
}

func (e *Engine) nextQuestionID() string {
	e.qaSeq++
	return fmt.Sprintf("qa_%d", e.qaSeq)
}

func (e *Engine) nextMessageID() string {
	e.chatSeq++
	return fmt.Sprintf("chat_%d", e.chatSeq)
}

// trackEventLocked appends an engagement event. Callers hold e.mu.
func (e *Engine) trackEventLocked(userID, eventType string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	e.events = append(e.events, models.EngagementEvent{
		UserID:    userID,
		Type:      eventType,
		Data:      data,
		Timestamp: e.now(),
	})
}

// TrackEvent appends an engagement event to the session log. The event type is
// not validated against the known set; unknown types score with weight 1.
func (e *Engine) TrackEvent(userID, eventType string, data map[string]interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.trackEventLocked(userID, eventType, data)
}

// EventCount returns the total number of logged engagement events.
func (e *Engine) EventCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}
