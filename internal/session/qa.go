package session

import (
	"sort"

	"github.com/event-booster/backend/internal/models"
)

// priorityRank orders the Q&A priority tiers. Unknown values rank as normal.
var priorityRank = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityNormal: 2,
	models.PriorityLow:    1,
}

func rankOf(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return priorityRank[models.PriorityNormal]
}

// AddQuestion appends a question to the Q&A queue and returns its id. The
// question starts pending with zero votes.
func (e *Engine) AddQuestion(question, userName, segment, priority string) string {
	if priority == "" {
		priority = models.PriorityNormal
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	q := &models.Question{
		ID:        e.nextQuestionID(),
		Question:  question,
		UserName:  userName,
		Segment:   segment,
		Priority:  priority,
		Status:    models.QuestionPending,
		CreatedAt: e.now(),
	}
	e.questions = append(e.questions, q)
	return q.ID
}

// VoteQuestion increments a question's vote count. Votes are not limited to
// one per user. Returns false for an unknown id.
func (e *Engine) VoteQuestion(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, q := range e.questions {
		if q.ID == id {
			q.Votes++
			return true
		}
	}
	return false
}

// AnswerQuestion sets the answer text and flips the question to answered.
// Answering an already-answered question overwrites the previous answer.
// Returns false for an unknown id.
func (e *Engine) AnswerQuestion(id, answer string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, q := range e.questions {
		if q.ID == id {
			q.Answer = answer
			q.Status = models.QuestionAnswered
			return true
		}
	}
	return false
}

// Queue returns a snapshot of the Q&A queue ordered by sortBy: "votes"
// (descending), "time" (ascending), or "priority" (tier descending). Every
// sort is stable, so ties keep insertion order. Any other sortBy value
// returns insertion order.
func (e *Engine) Queue(sortBy string) []models.Question {
	e.mu.Lock()
	out := make([]models.Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = *q
	}
	e.mu.Unlock()

	switch sortBy {
	case "votes":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Votes > out[j].Votes })
	case "time":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case "priority":
		sort.SliceStable(out, func(i, j int) bool { return rankOf(out[i].Priority) > rankOf(out[j].Priority) })
	}
	return out
}
