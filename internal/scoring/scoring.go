// Package scoring holds the heuristic scoring helpers: engagement likelihood,
// churn risk, and event ROI. All functions are pure and deterministic.
package scoring

import (
	"github.com/event-booster/backend/internal/models"
)

// EngagementFeatures is the feature bag for PredictEngagement. Zero values
// contribute zero to the score.
type EngagementFeatures struct {
	DaysSinceRegistration int     `json:"days_since_registration"`
	EventsAttended        int     `json:"previous_events_attended"`
	QuizCompletionRate    float64 `json:"quiz_completion_rate"`
	SocialShares          int     `json:"social_shares"`
	Interests             string  `json:"interests"` // semicolon-delimited tags
}

// PredictEngagement maps a feature bag to a score in [0,1]: a weighted sum of
// five capped sub-scores (recency/30d, attendance/10, completion rate,
// shares/5, interest diversity/5) with weights 0.2/0.3/0.25/0.15/0.1.
func PredictEngagement(f EngagementFeatures) float64 {
	score := capRatio(float64(f.DaysSinceRegistration), 30)*0.2 +
		capRatio(float64(f.EventsAttended), 10)*0.3 +
		f.QuizCompletionRate*0.25 +
		capRatio(float64(f.SocialShares), 5)*0.15 +
		capRatio(float64(len(models.InterestTags(f.Interests))), 5)*0.1
	if score > 1 {
		return 1
	}
	return score
}

// ChurnInput is the feature bag for PredictChurnRisk.
type ChurnInput struct {
	DaysSinceLastActivity int     `json:"days_since_last_activity"`
	AttendanceRate        float64 `json:"attendance_rate"`
	EngagementScore       float64 `json:"engagement_score"`
}

// ChurnRisk is a churn score with its tier and the fixed recommendation list
// for that tier.
type ChurnRisk struct {
	Score           float64  `json:"risk_score"`
	Tier            string   `json:"risk_level"`
	Recommendations []string `json:"recommendations"`
}

var churnRecommendations = map[string][]string{
	"High": {
		"Send personalized re-engagement email",
		"Offer exclusive content or early access",
		"Schedule one-on-one check-in call",
		"Provide special discount for next event",
	},
	"Medium": {
		"Send targeted content based on interests",
		"Invite to upcoming relevant events",
		"Engage through social media",
		"Send event highlights and recordings",
	},
	"Low": {
		"Continue regular communication",
		"Share upcoming event calendar",
		"Encourage social sharing",
		"Request feedback and testimonials",
	},
}

// PredictChurnRisk scores churn risk in [0,1] from activity recency (capped at
// 60 days, weight 0.4), inverse attendance rate (0.35), and inverse engagement
// score (0.25). Tier: High above 0.7, Medium above 0.4, else Low.
func PredictChurnRisk(in ChurnInput) ChurnRisk {
	score := capRatio(float64(in.DaysSinceLastActivity), 60)*0.4 +
		(1-in.AttendanceRate)*0.35 +
		(1-in.EngagementScore)*0.25

	tier := "Low"
	if score > 0.7 {
		tier = "High"
	} else if score > 0.4 {
		tier = "Medium"
	}
	return ChurnRisk{
		Score:           score,
		Tier:            tier,
		Recommendations: append([]string(nil), churnRecommendations[tier]...),
	}
}

// valuePerConversion is the fixed revenue attributed to one conversion.
const valuePerConversion = 100

// ROIInput describes one event for the ROI estimate. A zero ConversionRate
// falls back to 5%; zero Costs fall back to registrations*10.
type ROIInput struct {
	Registrations  int     `json:"total_registrations"`
	AttendanceRate float64 `json:"attendance_rate"`
	AvgEngagement  float64 `json:"avg_engagement_score"`
	ConversionRate float64 `json:"conversion_rate"`
	Costs          float64 `json:"event_costs"`
}

// ROIEstimate is the computed revenue/cost projection for an event.
type ROIEstimate struct {
	Revenue      float64 `json:"estimated_revenue"`
	Costs        float64 `json:"estimated_costs"`
	ROIPercent   float64 `json:"roi_percentage"`
	EngagedCount float64 `json:"engaged_attendees"`
	Conversions  float64 `json:"estimated_conversions"`
}

// CalculateROI estimates event ROI from registrations, attendance, and
// engagement. ROI% is defined as 0 when costs are 0.
func CalculateROI(in ROIInput) ROIEstimate {
	conversionRate := in.ConversionRate
	if conversionRate == 0 {
		conversionRate = 0.05
	}
	costs := in.Costs
	if costs == 0 {
		costs = float64(in.Registrations) * 10
	}

	engaged := float64(in.Registrations) * in.AttendanceRate * in.AvgEngagement
	conversions := engaged * conversionRate
	revenue := conversions * valuePerConversion

	roi := 0.0
	if costs > 0 {
		roi = (revenue - costs) / costs * 100
	}
	return ROIEstimate{
		Revenue:      revenue,
		Costs:        costs,
		ROIPercent:   roi,
		EngagedCount: engaged,
		Conversions:  conversions,
	}
}

func capRatio(value, limit float64) float64 {
	r := value / limit
	if r > 1 {
		return 1
	}
	return r
}
