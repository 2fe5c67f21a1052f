package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictEngagementZeroFeatures(t *testing.T) {
	require.Equal(t, 0.0, PredictEngagement(EngagementFeatures{}))
}

func TestPredictEngagementCapsSubScores(t *testing.T) {
	score := PredictEngagement(EngagementFeatures{
		DaysSinceRegistration: 300, // capped at 30
		EventsAttended:        100, // capped at 10
		SocialShares:          50,  // capped at 5
		QuizCompletionRate:    1.0,
		Interests:             "a;b;c;d;e;f;g", // capped at 5
	})
	require.Equal(t, 1.0, score)
}

func TestPredictEngagementWeights(t *testing.T) {
	score := PredictEngagement(EngagementFeatures{
		DaysSinceRegistration: 15,  // 0.5 * 0.2
		EventsAttended:        5,   // 0.5 * 0.3
		QuizCompletionRate:    0.5, // 0.5 * 0.25
		SocialShares:          0,
		Interests:             "",
	})
	require.InDelta(t, 0.5*0.2+0.5*0.3+0.5*0.25, score, 1e-9)
}

func TestPredictChurnRiskHighTier(t *testing.T) {
	risk := PredictChurnRisk(ChurnInput{
		DaysSinceLastActivity: 70,
		AttendanceRate:        0.0,
		EngagementScore:       0.0,
	})
	require.InDelta(t, 1.0, risk.Score, 1e-9)
	require.Equal(t, "High", risk.Tier)
	require.Equal(t, "Send personalized re-engagement email", risk.Recommendations[0])
}

func TestPredictChurnRiskTiers(t *testing.T) {
	tests := []struct {
		name string
		in   ChurnInput
		tier string
	}{
		{"low", ChurnInput{DaysSinceLastActivity: 0, AttendanceRate: 1, EngagementScore: 1}, "Low"},
		{"medium", ChurnInput{DaysSinceLastActivity: 30, AttendanceRate: 0.5, EngagementScore: 0.7}, "Medium"},
		{"high", ChurnInput{DaysSinceLastActivity: 60, AttendanceRate: 0.1, EngagementScore: 0.1}, "High"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.tier, PredictChurnRisk(tt.in).Tier)
		})
	}
}

func TestCalculateROI(t *testing.T) {
	est := CalculateROI(ROIInput{
		Registrations:  100,
		AttendanceRate: 0.5,
		AvgEngagement:  0.8,
		ConversionRate: 0.1,
		Costs:          2000,
	})
	require.InDelta(t, 40.0, est.EngagedCount, 1e-9)
	require.InDelta(t, 4.0, est.Conversions, 1e-9)
	require.InDelta(t, 400.0, est.Revenue, 1e-9)
	require.InDelta(t, (400.0-2000.0)/2000.0*100, est.ROIPercent, 1e-9)
}

func TestCalculateROIDefaults(t *testing.T) {
	est := CalculateROI(ROIInput{Registrations: 100, AttendanceRate: 1, AvgEngagement: 1})
	require.InDelta(t, 1000.0, est.Costs, 1e-9)    // registrations * 10
	require.InDelta(t, 5.0, est.Conversions, 1e-9) // 5% default conversion
}

func TestCalculateROIZeroCostsIsZeroROI(t *testing.T) {
	est := CalculateROI(ROIInput{})
	require.Equal(t, 0.0, est.ROIPercent)
	require.Equal(t, 0.0, est.Costs)
}

func TestAutoReplyMatchesFAQ(t *testing.T) {
	got := AutoReply("When does the event start?")
	require.False(t, got.NeedsHuman)
	require.InDelta(t, 0.8, got.Confidence, 1e-9)
	require.Contains(t, got.Response, "starts at the scheduled time")

	got = AutoReply("Will a recording be available afterwards?")
	require.Contains(t, got.Response, "recordings will be available")
}

func TestAutoReplyEscalatesUnknownQuestions(t *testing.T) {
	got := AutoReply("What is the meaning of life?")
	require.True(t, got.NeedsHuman)
	require.InDelta(t, 0.3, got.Confidence, 1e-9)
}

func TestRecommendContent(t *testing.T) {
	content := []ContentItem{
		{Title: "Intro to AI", Description: "machine learning basics"},
		{Title: "Cooking 101", Description: "pasta"},
		{Title: "AI and Marketing", Description: "ai driven marketing funnels"},
	}
	got := RecommendContent("AI;Marketing", content)
	require.Len(t, got, 2)
	require.Equal(t, "AI and Marketing", got[0].Content.Title)
	require.Equal(t, 2, got[0].Relevance)
	require.Equal(t, "Intro to AI", got[1].Content.Title)
}

func TestRecommendContentTopFiveStable(t *testing.T) {
	var content []ContentItem
	for i := 0; i < 8; i++ {
		content = append(content, ContentItem{Title: "ai talk", Description: ""})
	}
	got := RecommendContent("ai", content)
	require.Len(t, got, 5)
}
