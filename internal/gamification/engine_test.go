package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/event-booster/backend/internal/models"
)

func TestPointsIgnoresUnconfiguredTypes(t *testing.T) {
	e := NewEngine()
	points := e.Points(models.UserActivity{Activities: map[string]int{
		models.ActivityEventAttendance: 2,  // 2 * 50
		models.ActivityPreEventQuiz:    3,  // 3 * 15
		models.ActivityConnectionsMade: 10, // no point value configured
		"made_up":                      99, // unconfigured
	}})
	require.Equal(t, 145, points)
}

func TestBadges(t *testing.T) {
	e := NewEngine()

	require.Empty(t, e.Badges(models.UserActivity{}))

	badges := e.Badges(models.UserActivity{
		DaysBeforeRegistration: 7,
		Activities: map[string]int{
			models.ActivityPreEventQuiz:      5,
			models.ActivitySocialShare:       3,
			models.ActivityEventAttendance:   5,
			models.ActivityQuestionAsked:     10,
			models.ActivityPostEventFeedback: 10,
			models.ActivityConnectionsMade:   20,
		},
	})
	require.Equal(t, []string{
		"early_bird", "quiz_master", "social_butterfly", "perfect_attendee",
		"question_champion", "feedback_hero", "networking_pro",
	}, badges)
}

func TestBadgeThresholdsAreInclusive(t *testing.T) {
	e := NewEngine()
	require.Empty(t, e.Badges(models.UserActivity{
		DaysBeforeRegistration: 6,
		Activities:             map[string]int{models.ActivityPreEventQuiz: 4},
	}))
	require.Contains(t, e.Badges(models.UserActivity{
		Activities: map[string]int{models.ActivityPreEventQuiz: 5},
	}), "quiz_master")
}

func TestLeaderboardStableOnTies(t *testing.T) {
	e := NewEngine()
	hundred := models.UserActivity{Activities: map[string]int{models.ActivityEventAttendance: 2}} // 100
	fifty := models.UserActivity{Activities: map[string]int{models.ActivityEventAttendance: 1}}   // 50

	board := e.Leaderboard([]UserRecord{
		{Name: "A", Data: hundred},
		{Name: "B", Data: hundred},
		{Name: "C", Data: fifty},
	})
	require.Equal(t, []string{"A", "B", "C"}, []string{board[0].Name, board[1].Name, board[2].Name})
	require.Equal(t, 100, board[0].Points)
}

func TestSuggestConnections(t *testing.T) {
	got := SuggestConnections("AI;SaaS", []UserRecord{
		{Name: "exact", Data: models.UserActivity{Interests: "AI;SaaS"}},
		{Name: "partial", Data: models.UserActivity{Interests: "AI;Cooking"}},
		{Name: "none", Data: models.UserActivity{Interests: "Cooking"}},
	})
	require.Len(t, got, 2)
	require.Equal(t, "exact", got[0].Name)
	require.InDelta(t, 1.0, got[0].MatchScore, 1e-9)
	require.Equal(t, "partial", got[1].Name)
	require.InDelta(t, 1.0/3.0, got[1].MatchScore, 1e-9)
	require.Equal(t, []string{"AI"}, got[1].CommonInterests)
}

func TestSuggestConnectionsDeduplicatesTags(t *testing.T) {
	got := SuggestConnections("AI", []UserRecord{
		{Name: "dup", Data: models.UserActivity{Interests: "AI;AI"}},
	})
	require.Len(t, got, 1)
	require.InDelta(t, 1.0, got[0].MatchScore, 1e-9)
	require.Equal(t, []string{"AI"}, got[0].CommonInterests)
}

func TestSuggestConnectionsTopFive(t *testing.T) {
	var candidates []UserRecord
	for i := 0; i < 8; i++ {
		candidates = append(candidates, UserRecord{Name: "u", Data: models.UserActivity{Interests: "AI"}})
	}
	require.Len(t, SuggestConnections("AI", candidates), 5)
}

func TestTeaserIsMemberOfBucket(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 20; i++ {
		require.Contains(t, TeaserBucket("SaaS"), e.Teaser("SaaS;AI"))
	}
	// Unmatched first interest falls back to the AI bucket.
	require.Contains(t, TeaserBucket("AI"), e.Teaser("Knitting"))
}

func TestCountdownBands(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		date    time.Time
		urgency string
	}{
		{"low", now.AddDate(0, 0, 10), "low"},
		{"medium", now.AddDate(0, 0, 5), "medium"},
		{"high", now.AddDate(0, 0, 2), "high"},
		{"event day", now.Add(time.Hour), "critical"},
		{"passed", now.AddDate(0, 0, -3), "critical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.urgency, CountdownContent(tt.date, now).Urgency)
		})
	}
}

func TestCountdownDaysLeftFloors(t *testing.T) {
	now := time.Now()
	cd := CountdownContent(now.Add(36*time.Hour), now)
	require.Equal(t, 1, cd.DaysLeft)

	cd = CountdownContent(now.Add(-12*time.Hour), now)
	require.Equal(t, -1, cd.DaysLeft)
}

func TestQuizQuestionsFallbacks(t *testing.T) {
	require.NotEmpty(t, QuizQuestions("AI", "hard"))
	// Unknown topic falls back to AI, unknown difficulty to medium.
	require.Equal(t, QuizQuestions("AI", "medium"), QuizQuestions("Gardening", "extreme"))
	require.Equal(t, QuizQuestions("SaaS", "medium"), QuizQuestions("SaaS", "hard"))
}
