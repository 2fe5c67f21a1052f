package gamification

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/event-booster/backend/internal/models"
)

// ConnectionSuggestion is one suggested attendee connection.
type ConnectionSuggestion struct {
	Name            string   `json:"name"`
	CommonInterests []string `json:"common_interests"`
	MatchScore      float64  `json:"match_score"`
}

// SuggestConnections ranks candidates by Jaccard similarity over their
// semicolon-delimited interest tag sets and returns the top five. Candidates with
// no shared interest are excluded; ties keep input order.
func SuggestConnections(interests string, candidates []UserRecord) []ConnectionSuggestion {
	mine := make(map[string]bool)
	for _, t := range models.InterestTags(interests) {
		mine[t] = true
	}

	var suggestions []ConnectionSuggestion
	for _, cand := range candidates {
		theirs := make(map[string]bool)
		union := len(mine)
		var common []string
		for _, t := range models.InterestTags(cand.Data.Interests) {
			if theirs[t] {
				continue
			}
			theirs[t] = true
			if mine[t] {
				common = append(common, t)
			} else {
				union++
			}
		}
		if len(common) == 0 {
			continue
		}
		suggestions = append(suggestions, ConnectionSuggestion{
			Name:            cand.Name,
			CommonInterests: common,
			MatchScore:      float64(len(common)) / float64(union),
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool { return suggestions[i].MatchScore > suggestions[j].MatchScore })
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

var teasers = map[string][]string{
	"AI": {
		"Did you know? AI can now predict event engagement with 95% accuracy!",
		"Fun fact: The human brain has 86 billion neurons - similar to some AI models!",
		"AI processes data 1000x faster than humans. Ready to learn how?",
	},
	"SaaS": {
		"SaaS companies grow 5x faster than traditional software companies!",
		"95% of businesses use at least one SaaS application. What's your favorite?",
		"SaaS market is expected to reach $623 billion by 2023!",
	},
	"Marketing": {
		"Personalized marketing can increase revenue by up to 15%!",
		"Email marketing has an average ROI of $42 for every $1 spent!",
		"Mobile marketing drives 40% more engagement than desktop!",
	},
}

// TeaserBucket returns the fixed teaser list for an interest, falling back to
// the AI bucket for unmatched interests.
func TeaserBucket(interest string) []string {
	if bucket, ok := teasers[interest]; ok {
		return bucket
	}
	return teasers["AI"]
}

// Teaser picks a uniformly random teaser from the bucket for the user's first
// interest tag. This is the one nondeterministic operation in the system.
func (e *Engine) Teaser(interests string) string {
	bucket := TeaserBucket(models.FirstInterest(interests))
	return bucket[e.rng.Intn(len(bucket))]
}

// Countdown is the countdown widget content for one user and event date.
type Countdown struct {
	Message  string `json:"message"`
	Action   string `json:"action"`
	Urgency  string `json:"urgency"`
	DaysLeft int    `json:"days_left"`
}

// CountdownContent builds countdown content from the whole days remaining
// until eventDate (floored; negative once the event has passed). Four bands:
// more than 7 days low, 3-7 medium, 1-3 high, 0 or past critical.
func CountdownContent(eventDate, now time.Time) Countdown {
	daysLeft := int(math.Floor(eventDate.Sub(now).Hours() / 24))

	switch {
	case daysLeft > 7:
		return Countdown{
			Message:  fmt.Sprintf("%d days to go! Time to prepare!", daysLeft),
			Action:   "Take a pre-event quiz to earn points!",
			Urgency:  "low",
			DaysLeft: daysLeft,
		}
	case daysLeft > 3:
		return Countdown{
			Message:  fmt.Sprintf("Only %d days left! Getting excited?", daysLeft),
			Action:   "Connect with other attendees now!",
			Urgency:  "medium",
			DaysLeft: daysLeft,
		}
	case daysLeft > 0:
		return Countdown{
			Message:  fmt.Sprintf("%d days to go! Final preparations!", daysLeft),
			Action:   "Last chance to complete challenges!",
			Urgency:  "high",
			DaysLeft: daysLeft,
		}
	default:
		return Countdown{
			Message:  "Event day is here! Let's go!",
			Action:   "Join the event now!",
			Urgency:  "critical",
			DaysLeft: daysLeft,
		}
	}
}
