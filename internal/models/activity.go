package models

// Recordable activity types. Activity counts outside this set are rejected
// when recorded; the points table simply ignores anything unconfigured.
const (
	ActivityEventRegistration = "event_registration"
	ActivityPreEventQuiz      = "pre_event_quiz"
	ActivityPollParticipation = "poll_participation"
	ActivityQuestionAsked     = "question_asked"
	ActivityEventAttendance   = "event_attendance"
	ActivityPostEventFeedback = "post_event_feedback"
	ActivitySocialShare       = "social_share"
	ActivityReferral          = "referral"
	ActivityStreakBonus       = "streak_bonus"
	ActivityConnectionsMade   = "connections_made"
)

// KnownActivityTypes lists every recordable activity type.
var KnownActivityTypes = []string{
	ActivityEventRegistration,
	ActivityPreEventQuiz,
	ActivityPollParticipation,
	ActivityQuestionAsked,
	ActivityEventAttendance,
	ActivityPostEventFeedback,
	ActivitySocialShare,
	ActivityReferral,
	ActivityStreakBonus,
	ActivityConnectionsMade,
}

// IsKnownActivity reports whether t is a recordable activity type.
func IsKnownActivity(t string) bool {
	for _, k := range KnownActivityTypes {
		if k == t {
			return true
		}
	}
	return false
}

// UserActivity is one user's entry in the activity file: interests, how many
// days before the event they registered, and per-type activity counts.
type UserActivity struct {
	Interests              string         `json:"interests"`
	DaysBeforeRegistration int            `json:"days_before_registration"`
	Activities             map[string]int `json:"activities"`
}
