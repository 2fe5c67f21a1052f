package session

import "github.com/event-booster/backend/internal/models"

// SegmentActivity is the most active segment and its event count.
type SegmentActivity struct {
	Segment string `json:"segment"`
	Events  int    `json:"events"`
}

// Insights is the real-time session summary.
type Insights struct {
	EngagementScore    float64          `json:"current_engagement_score"`
	ActivePolls        int              `json:"total_active_polls"`
	TotalQuestions     int              `json:"total_questions"`
	PendingQuestions   int              `json:"pending_questions"`
	UniqueParticipants int              `json:"unique_participants"`
	Trend              string           `json:"engagement_trend"`
	TopQuestion        *models.Question `json:"top_question,omitempty"`
	MostActiveSegment  *SegmentActivity `json:"most_active_segment,omitempty"`
}

// LiveInsights aggregates the current session state: score over the default
// window, poll and question counts, distinct participants across the whole
// event log, the trend, the top-voted question (first found wins ties), and
// the most active segment with unsegmented events counted as "Unknown".
func (e *Engine) LiveInsights() Insights {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liveInsightsLocked()
}

func (e *Engine) liveInsightsLocked() Insights {
	in := Insights{
		EngagementScore: e.engagementScoreLocked(DefaultScoreWindow),
		ActivePolls:     len(e.polls),
		TotalQuestions:  len(e.questions),
		Trend:           e.trendLocked(),
	}

	for _, q := range e.questions {
		if q.Status == models.QuestionPending {
			in.PendingQuestions++
		}
	}

	participants := make(map[string]bool)
	for _, ev := range e.events {
		participants[ev.UserID] = true
	}
	in.UniqueParticipants = len(participants)

	var top *models.Question
	for _, q := range e.questions {
		if top == nil || q.Votes > top.Votes {
			top = q
		}
	}
	if top != nil {
		copied := *top
		in.TopQuestion = &copied
	}

	counts := make(map[string]int)
	var order []string
	for _, ev := range e.events {
		seg := ev.Segment()
		if _, seen := counts[seg]; !seen {
			order = append(order, seg)
		}
		counts[seg]++
	}
	var best *SegmentActivity
	for _, seg := range order {
		if best == nil || counts[seg] > best.Events {
			best = &SegmentActivity{Segment: seg, Events: counts[seg]}
		}
	}
	in.MostActiveSegment = best

	return in
}

// Export is the one-shot full dump of a session: every collection plus the
// current insights. Timestamps serialize as RFC 3339.
type Export struct {
	Polls     []models.Poll            `json:"polls"`
	Questions []models.Question        `json:"qa_queue"`
	Events    []models.EngagementEvent `json:"engagement_data"`
	Messages  []models.ChatMessage     `json:"chat_messages"`
	Summary   Insights                 `json:"session_summary"`
}

// ExportSessionData snapshots the whole session for external analysis.
func (e *Engine) ExportSessionData() Export {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := Export{
		Polls:     make([]models.Poll, 0, len(e.pollOrder)),
		Questions: make([]models.Question, 0, len(e.questions)),
		Events:    append([]models.EngagementEvent(nil), e.events...),
		Messages:  make([]models.ChatMessage, 0, len(e.messages)),
		Summary:   e.liveInsightsLocked(),
	}
	for _, id := range e.pollOrder {
		out.Polls = append(out.Polls, copyPoll(e.polls[id]))
	}
	for _, q := range e.questions {
		out.Questions = append(out.Questions, *q)
	}
	for _, m := range e.messages {
		out.Messages = append(out.Messages, copyMessage(m))
	}
	return out
}
