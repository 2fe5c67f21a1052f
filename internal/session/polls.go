package session

import (
	"errors"
	"strings"

	"github.com/event-booster/backend/internal/models"
)

// ErrTooFewOptions is returned by CreatePoll when fewer than two distinct
// non-empty options are supplied. A poll with fewer has an unusable tally, so
// this is the one operation that fails loudly instead of silently.
var ErrTooFewOptions = errors.New("poll requires at least two distinct options")

// CreatePoll registers a new active poll and returns its id. Every option gets
// a zero tally from the start.
func (e *Engine) CreatePoll(question string, options []string, pollType string) (string, error) {
	distinct := make([]string, 0, len(options))
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" || seen[opt] {
			continue
		}
		seen[opt] = true
		distinct = append(distinct, opt)
	}
	if len(distinct) < 2 {
		return "", ErrTooFewOptions
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	responses := make(map[string]int, len(distinct))
	for _, opt := range distinct {
		responses[opt] = 0
	}
	id := e.nextPollID()
	e.polls[id] = &models.Poll{
		ID:        id,
		Question:  question,
		Options:   distinct,
		Type:      pollType,
		Responses: responses,
		Active:    true,
		Segments:  make(map[string]map[string]int),
		CreatedAt: e.now(),
	}
	e.pollOrder = append(e.pollOrder, id)
	return id, nil
}

// SubmitPollResponse records one vote. It returns false without mutating
// anything when the poll is unknown, inactive, or the option is not in the
// poll's option set. The option tally, the total, and the optional segment
// tally move together under the engine lock.
func (e *Engine) SubmitPollResponse(pollID, option, segment string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.polls[pollID]
	if !ok || !p.Active {
		return false
	}
	if _, ok := p.Responses[option]; !ok {
		return false
	}

	p.Responses[option]++
	p.Total++
	if segment != "" {
		tally, ok := p.Segments[segment]
		if !ok {
			tally = make(map[string]int, len(p.Options))
			for _, opt := range p.Options {
				tally[opt] = 0
			}
			p.Segments[segment] = tally
		}
		tally[option]++
	}
	return true
}

// ClosePoll deactivates a poll so further responses are rejected. Returns
// false for an unknown poll id.
func (e *Engine) ClosePoll(pollID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.polls[pollID]
	if !ok {
		return false
	}
	p.Active = false
	return true
}

// PollResults returns the computed result snapshot for a poll, or nil when the
// poll is unknown. Percentages are all zero while the poll has no responses;
// the segment breakdown is included only when requested and non-empty.
func (e *Engine) PollResults(pollID string, showSegments bool) *models.PollResults {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.polls[pollID]
	if !ok {
		return nil
	}

	results := &models.PollResults{
		Question:    p.Question,
		Responses:   make(map[string]int, len(p.Responses)),
		Total:       p.Total,
		Percentages: make(map[string]float64, len(p.Responses)),
	}
	for opt, count := range p.Responses {
		results.Responses[opt] = count
		if p.Total > 0 {
			results.Percentages[opt] = float64(count) / float64(p.Total) * 100
		} else {
			results.Percentages[opt] = 0
		}
	}
	if showSegments && len(p.Segments) > 0 {
		results.Segments = make(map[string]map[string]int, len(p.Segments))
		for seg, tally := range p.Segments {
			copied := make(map[string]int, len(tally))
			for opt, count := range tally {
				copied[opt] = count
			}
			results.Segments[seg] = copied
		}
	}
	return results
}

// Polls returns a snapshot of every poll in creation order.
func (e *Engine) Polls() []models.Poll {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Poll, 0, len(e.pollOrder))
	for _, id := range e.pollOrder {
		out = append(out, copyPoll(e.polls[id]))
	}
	return out
}

func copyPoll(p *models.Poll) models.Poll {
	c := *p
	c.Options = append([]string(nil), p.Options...)
	c.Responses = make(map[string]int, len(p.Responses))
	for opt, n := range p.Responses {
		c.Responses[opt] = n
	}
	c.Segments = make(map[string]map[string]int, len(p.Segments))
	for seg, tally := range p.Segments {
		t := make(map[string]int, len(tally))
		for opt, n := range tally {
			t[opt] = n
		}
		c.Segments[seg] = t
	}
	return c
}
