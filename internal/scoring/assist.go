package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/event-booster/backend/internal/models"
)

// AutoReplyResult is a canned Q&A reply with a confidence estimate.
type AutoReplyResult struct {
	Response   string  `json:"response"`
	Confidence float64 `json:"confidence"`
	NeedsHuman bool    `json:"needs_human"`
}

type faqPattern struct {
	re       *regexp.Regexp
	response string
}

var faqPatterns = []faqPattern{
	{regexp.MustCompile(`when.*start`), "The event starts at the scheduled time mentioned in your invitation. Please check your email for specific timing."},
	{regexp.MustCompile(`how.*join`), "You can join the event using the link provided in your registration email or through the event platform."},
	{regexp.MustCompile(`recording.*available`), "Yes, event recordings will be available to all registered participants within 24 hours after the event."},
	{regexp.MustCompile(`certificate`), "Certificates of attendance will be provided to all attendees who complete the full session."},
	{regexp.MustCompile(`technical.*issue`), "For technical issues, please contact our support team or use the chat function during the event."},
	{regexp.MustCompile(`slides|presentation`), "Presentation slides will be shared with all attendees after the event concludes."},
	{regexp.MustCompile(`networking`), "Networking opportunities are available through our platform's networking feature and breakout rooms."},
	{regexp.MustCompile(`follow.*up`), "Follow-up materials and resources will be sent to all participants within 48 hours."},
}

// AutoReply matches a question against the FAQ patterns and returns the canned
// response; unmatched questions get a low-confidence escalation reply.
func AutoReply(question string) AutoReplyResult {
	q := strings.ToLower(question)
	for _, p := range faqPatterns {
		if p.re.MatchString(q) {
			return AutoReplyResult{Response: p.response, Confidence: 0.8}
		}
	}
	return AutoReplyResult{
		Response:   "Thank you for your question. This seems to require specific information. Our team will get back to you shortly, or you can ask this during the live Q&A session.",
		Confidence: 0.3,
		NeedsHuman: true,
	}
}

// ContentItem is a piece of recommendable content.
type ContentItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContentMatch pairs a content item with its relevance to a user.
type ContentMatch struct {
	Content      ContentItem `json:"content"`
	Relevance    int         `json:"relevance_score"`
	MatchReasons []string    `json:"match_reasons"`
}

// RecommendContent ranks content by how many of the user's interest tags
// appear in its title or description, returning the top five. Items with no
// overlap are excluded; ties keep input order.
func RecommendContent(interests string, available []ContentItem) []ContentMatch {
	tags := models.InterestTags(strings.ToLower(interests))

	var matches []ContentMatch
	for _, item := range available {
		text := strings.ToLower(item.Title + " " + item.Description)
		var reasons []string
		for _, tag := range tags {
			if strings.Contains(text, tag) {
				reasons = append(reasons, tag)
			}
		}
		if len(reasons) > 0 {
			matches = append(matches, ContentMatch{Content: item, Relevance: len(reasons), MatchReasons: reasons})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Relevance > matches[j].Relevance })
	if len(matches) > 5 {
		matches = matches[:5]
	}
	return matches
}
