package gamification

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/internal/activity"
	"github.com/event-booster/backend/internal/attendees"
	"github.com/event-booster/backend/pkg/response"
)

// RecordActivityRequest is the body for POST /users/:name/activities.
type RecordActivityRequest struct {
	Type  string `json:"type" binding:"required"`
	Count int    `json:"count"`
}

// Handler handles gamification HTTP endpoints.
type Handler struct {
	engine *Engine
	store  *activity.Store
	roster *attendees.Repository
}

// NewHandler creates a gamification handler.
func NewHandler(engine *Engine, store *activity.Store, roster *attendees.Repository) *Handler {
	return &Handler{engine: engine, store: store, roster: roster}
}

// userRecords returns every user with activity data, roster order first so
// leaderboard ties resolve deterministically; users present only in the
// activity file follow.
func (h *Handler) userRecords() ([]UserRecord, error) {
	data, err := h.store.Load()
	if err != nil {
		return nil, err
	}
	records := make([]UserRecord, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, a := range h.roster.List() {
		if user, ok := data[a.Name]; ok {
			records = append(records, UserRecord{Name: a.Name, Data: user})
			seen[a.Name] = true
		}
	}
	for name, user := range data {
		if !seen[name] {
			records = append(records, UserRecord{Name: name, Data: user})
		}
	}
	return records, nil
}

// Leaderboard handles GET /gamification/leaderboard.
func (h *Handler) Leaderboard(c *gin.Context) {
	records, err := h.userRecords()
	if err != nil {
		response.Internal(c, "failed to load activity data")
		return
	}
	response.OK(c, gin.H{"leaderboard": h.engine.Leaderboard(records)})
}

// Points handles GET /users/:name/points.
func (h *Handler) Points(c *gin.Context) {
	name := c.Param("name")
	user, ok, err := h.store.Get(name)
	if err != nil {
		response.Internal(c, "failed to load activity data")
		return
	}
	if !ok {
		response.NotFound(c, "user not found")
		return
	}
	response.OK(c, gin.H{"name": name, "points": h.engine.Points(user)})
}

// Badges handles GET /users/:name/badges.
func (h *Handler) Badges(c *gin.Context) {
	name := c.Param("name")
	user, ok, err := h.store.Get(name)
	if err != nil {
		response.Internal(c, "failed to load activity data")
		return
	}
	if !ok {
		response.NotFound(c, "user not found")
		return
	}
	response.OK(c, gin.H{"name": name, "badges": h.engine.Badges(user)})
}

// RecordActivity handles POST /users/:name/activities. Unknown activity types
// are rejected here, at the boundary.
func (h *Handler) RecordActivity(c *gin.Context) {
	name := c.Param("name")

	var req RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	interests := ""
	if a, ok := h.roster.GetByName(name); ok {
		interests = a.Interests
	}
	user, err := h.store.Record(name, req.Type, req.Count, interests)
	if err != nil {
		if errors.Is(err, activity.ErrUnknownActivity) {
			response.BadRequest(c, "unknown activity type: "+req.Type)
			return
		}
		response.Internal(c, "failed to record activity")
		return
	}
	response.OK(c, gin.H{
		"name":   name,
		"points": h.engine.Points(user),
		"badges": h.engine.Badges(user),
	})
}

// Connections handles GET /users/:name/connections.
func (h *Handler) Connections(c *gin.Context) {
	name := c.Param("name")
	a, ok := h.roster.GetByName(name)
	if !ok {
		response.NotFound(c, "attendee not found")
		return
	}

	records, err := h.userRecords()
	if err != nil {
		response.Internal(c, "failed to load activity data")
		return
	}
	candidates := make([]UserRecord, 0, len(records))
	for _, r := range records {
		if r.Name != name {
			candidates = append(candidates, r)
		}
	}
	response.OK(c, gin.H{"suggestions": SuggestConnections(a.Interests, candidates)})
}

// Teaser handles GET /users/:name/teaser.
func (h *Handler) Teaser(c *gin.Context) {
	name := c.Param("name")
	a, ok := h.roster.GetByName(name)
	if !ok {
		response.NotFound(c, "attendee not found")
		return
	}
	response.OK(c, gin.H{"teaser": h.engine.Teaser(a.Interests)})
}

// Countdown handles GET /users/:name/countdown?event_date=2026-09-15T18:00:00Z.
func (h *Handler) Countdown(c *gin.Context) {
	eventDate, err := time.Parse(time.RFC3339, c.Query("event_date"))
	if err != nil {
		response.BadRequest(c, "invalid event_date; expected RFC 3339")
		return
	}
	response.OK(c, CountdownContent(eventDate, time.Now()))
}

// Quiz handles GET /quiz?topic=AI&difficulty=medium.
func (h *Handler) Quiz(c *gin.Context) {
	topic := c.DefaultQuery("topic", "AI")
	difficulty := c.DefaultQuery("difficulty", "medium")
	response.OK(c, gin.H{"questions": QuizQuestions(topic, difficulty)})
}

// Catalog handles GET /gamification/badges.
func (h *Handler) Catalog(c *gin.Context) {
	response.OK(c, gin.H{"badges": h.engine.BadgeCatalog()})
}
