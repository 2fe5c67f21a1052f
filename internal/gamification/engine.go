// Package gamification maps recorded user activity to points, badges, and a
// leaderboard, and produces the pre-event engagement content (teasers,
// countdowns, quizzes, connection suggestions).
package gamification

import (
	"math/rand"
	"sort"
	"time"

	"github.com/event-booster/backend/internal/models"
)

// Badge describes an earnable badge.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// Engine holds the points table and badge catalog.
type Engine struct {
	points map[string]int
	badges []Badge
	rng    *rand.Rand
}

// NewEngine creates a gamification engine with the default points table and
// badge catalog.
func NewEngine() *Engine {
	return &Engine{
		points: map[string]int{
			models.ActivityEventRegistration: 10,
			models.ActivityPreEventQuiz:      15,
			models.ActivityPollParticipation: 5,
			models.ActivityQuestionAsked:     20,
			models.ActivityEventAttendance:   50,
			models.ActivityPostEventFeedback: 15,
			models.ActivitySocialShare:       10,
			models.ActivityReferral:          25,
			models.ActivityStreakBonus:       5,
		},
		badges: []Badge{
			{ID: "early_bird", Name: "Early Bird", Description: "Registered 7+ days before event", Points: 25},
			{ID: "quiz_master", Name: "Quiz Master", Description: "Completed 5+ pre-event quizzes", Points: 50},
			{ID: "social_butterfly", Name: "Social Butterfly", Description: "Shared 3+ events on social media", Points: 30},
			{ID: "perfect_attendee", Name: "Perfect Attendee", Description: "Attended 5+ events", Points: 100},
			{ID: "question_champion", Name: "Question Champion", Description: "Asked 10+ questions", Points: 75},
			{ID: "feedback_hero", Name: "Feedback Hero", Description: "Provided feedback for 10+ events", Points: 60},
			{ID: "networking_pro", Name: "Networking Pro", Description: "Connected with 20+ attendees", Points: 80},
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Points totals a user's activity counts against the points table. Activity
// types without a configured value contribute nothing.
func (e *Engine) Points(user models.UserActivity) int {
	total := 0
	for activity, count := range user.Activities {
		total += e.points[activity] * count
	}
	return total
}

// Badges returns the ids of every badge the user has earned. The predicates
// are independent, so evaluation order never changes the result.
func (e *Engine) Badges(user models.UserActivity) []string {
	var earned []string
	acts := user.Activities
	if user.DaysBeforeRegistration >= 7 {
		earned = append(earned, "early_bird")
	}
	if acts[models.ActivityPreEventQuiz] >= 5 {
		earned = append(earned, "quiz_master")
	}
	if acts[models.ActivitySocialShare] >= 3 {
		earned = append(earned, "social_butterfly")
	}
	if acts[models.ActivityEventAttendance] >= 5 {
		earned = append(earned, "perfect_attendee")
	}
	if acts[models.ActivityQuestionAsked] >= 10 {
		earned = append(earned, "question_champion")
	}
	if acts[models.ActivityPostEventFeedback] >= 10 {
		earned = append(earned, "feedback_hero")
	}
	if acts[models.ActivityConnectionsMade] >= 20 {
		earned = append(earned, "networking_pro")
	}
	return earned
}

// BadgeCatalog returns the full badge catalog.
func (e *Engine) BadgeCatalog() []Badge {
	return append([]Badge(nil), e.badges...)
}

// UserRecord pairs a user name with their activity data. Leaderboard input is
// a slice so that ties on points keep caller order.
type UserRecord struct {
	Name string
	Data models.UserActivity
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Name       string   `json:"name"`
	Points     int      `json:"points"`
	BadgeCount int      `json:"badges_count"`
	Badges     []string `json:"badges"`
}

// Leaderboard ranks users by points descending. The sort is stable: equal
// points keep input order.
func (e *Engine) Leaderboard(users []UserRecord) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		badges := e.Badges(u.Data)
		entries = append(entries, LeaderboardEntry{
			Name:       u.Name,
			Points:     e.Points(u.Data),
			BadgeCount: len(badges),
			Badges:     badges,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	return entries
}
