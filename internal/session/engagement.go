package session

import (
	"time"

	"github.com/event-booster/backend/internal/models"
)

// DefaultScoreWindow is the trailing window for the live engagement score.
const DefaultScoreWindow = 5 * time.Minute

// eventWeights scores each known event type; anything else weighs 1.
var eventWeights = map[string]int{
	models.EventPollResponse: 3,
	models.EventQuestion:     5,
	models.EventChat:         2,
	models.EventClick:        1,
	models.EventReaction:     2,
	models.EventShare:        4,
}

func weightOf(eventType string) int {
	if w, ok := eventWeights[eventType]; ok {
		return w
	}
	return 1
}

// EngagementScore sums the per-type weights of events strictly newer than
// now-window and normalizes by the number of distinct users in that window.
// An empty window scores 0.
func (e *Engine) EngagementScore(window time.Duration) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engagementScoreLocked(window)
}

func (e *Engine) engagementScoreLocked(window time.Duration) float64 {
	cutoff := e.now().Add(-window)

	total := 0
	users := make(map[string]bool)
	for _, ev := range e.events {
		if !ev.Timestamp.After(cutoff) {
			continue
		}
		total += weightOf(ev.Type)
		users[ev.UserID] = true
	}
	if total == 0 {
		return 0
	}
	divisor := len(users)
	if divisor < 1 {
		divisor = 1
	}
	return float64(total) / float64(divisor)
}

// HeatmapBucket is one interval of the engagement heatmap.
type HeatmapBucket struct {
	TimeSlot    string         `json:"time_slot"`
	TotalEvents int            `json:"total_events"`
	UniqueUsers int            `json:"unique_users"`
	Breakdown   map[string]int `json:"event_breakdown"`
}

// Heatmap buckets the trailing hour of engagement events into intervals equal
// slices. The span is always one hour regardless of intervals; only the bucket
// width changes (60/intervals minutes). Events are assigned to
// [bucket start, bucket end). Returns nil when the event log is empty.
func (e *Engine) Heatmap(intervals int) []HeatmapBucket {
	if intervals < 1 {
		intervals = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.events) == 0 {
		return nil
	}

	now := e.now()
	width := time.Hour / time.Duration(intervals)
	buckets := make([]HeatmapBucket, 0, intervals)

	for i := 0; i < intervals; i++ {
		start := now.Add(-time.Hour).Add(time.Duration(i) * width)
		end := start.Add(width)

		b := HeatmapBucket{
			TimeSlot:  start.Format("15:04"),
			Breakdown: make(map[string]int),
		}
		users := make(map[string]bool)
		for _, ev := range e.events {
			if ev.Timestamp.Before(start) || !ev.Timestamp.Before(end) {
				continue
			}
			b.TotalEvents++
			b.Breakdown[ev.Type]++
			users[ev.UserID] = true
		}
		b.UniqueUsers = len(users)
		buckets = append(buckets, b)
	}
	return buckets
}

// trendLocked classifies engagement movement by comparing event counts in the
// last five minutes against the five minutes before that. Fewer than ten
// logged events always reads as stable.
func (e *Engine) trendLocked() string {
	if len(e.events) < 10 {
		return "stable"
	}

	now := e.now()
	mid := now.Add(-5 * time.Minute)
	start := now.Add(-10 * time.Minute)

	recent, previous := 0, 0
	for _, ev := range e.events {
		switch {
		case ev.Timestamp.After(mid):
			recent++
		case !ev.Timestamp.Before(start) && !ev.Timestamp.After(mid):
			previous++
		}
	}

	switch {
	case float64(recent) > float64(previous)*1.2:
		return "increasing"
	case float64(recent) < float64(previous)*0.8:
		return "decreasing"
	default:
		return "stable"
	}
}
