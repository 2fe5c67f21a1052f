package models

import "strings"

// Attendee is one row of the registration roster.
type Attendee struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	RegisteredEvent string `json:"registered_event"`
	Interests       string `json:"interests"` // semicolon-delimited tags
	Attended        bool   `json:"attended"`
}

// Segment returns the attendee's coarse category: the first interest tag.
func (a Attendee) Segment() string {
	return FirstInterest(a.Interests)
}

// InterestTags splits a semicolon-delimited interest string into trimmed,
// non-empty tags.
func InterestTags(interests string) []string {
	var tags []string
	for _, t := range strings.Split(interests, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// FirstInterest returns the first interest tag, or "" when there is none.
func FirstInterest(interests string) string {
	if tags := InterestTags(interests); len(tags) > 0 {
		return tags[0]
	}
	return ""
}
