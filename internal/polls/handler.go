package polls

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/internal/models"
	"github.com/event-booster/backend/internal/realtime"
	"github.com/event-booster/backend/internal/session"
	"github.com/event-booster/backend/pkg/response"
)

// CreateRequest is the body for POST /session/polls.
type CreateRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required"`
	Type     string   `json:"type"`
}

// ResponseRequest is the body for POST /polls/:id/response.
type ResponseRequest struct {
	User    string `json:"user" binding:"required"`
	Option  string `json:"option" binding:"required"`
	Segment string `json:"segment"`
}

// Handler handles poll HTTP endpoints over the session engine.
type Handler struct {
	engine    *session.Engine
	hub       *realtime.Hub
	sessionID string
}

// NewHandler creates a polls handler.
func NewHandler(engine *session.Engine, hub *realtime.Hub, sessionID string) *Handler {
	return &Handler{engine: engine, hub: hub, sessionID: sessionID}
}

// Create handles POST /session/polls.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Type == "" {
		req.Type = "multiple_choice"
	}

	id, err := h.engine.CreatePoll(req.Question, req.Options, req.Type)
	if err != nil {
		if errors.Is(err, session.ErrTooFewOptions) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c, "failed to create poll")
		return
	}

	h.hub.BroadcastToSession(h.sessionID, "launch_poll", gin.H{
		"id": id, "question": req.Question, "options": req.Options,
	})
	response.Created(c, gin.H{"id": id})
}

// Respond handles POST /polls/:id/response. A rejected vote (unknown poll,
// closed poll, bad option) is reported in the body, not as an HTTP error: it
// is a best-effort UI action.
func (h *Handler) Respond(c *gin.Context) {
	pollID := c.Param("id")

	var req ResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	accepted := h.engine.SubmitPollResponse(pollID, req.Option, req.Segment)
	if accepted {
		h.engine.TrackEvent(req.User, models.EventPollResponse, map[string]interface{}{
			"poll_id":      pollID,
			"user_segment": req.Segment,
		})
		h.hub.BroadcastToSession(h.sessionID, "answer_poll", gin.H{
			"poll_id": pollID, "option": req.Option,
		})
	}
	response.OK(c, gin.H{"poll_id": pollID, "accepted": accepted})
}

// Close handles POST /polls/:id/close.
func (h *Handler) Close(c *gin.Context) {
	pollID := c.Param("id")
	if !h.engine.ClosePoll(pollID) {
		response.NotFound(c, "poll not found")
		return
	}
	h.hub.BroadcastToSession(h.sessionID, "close_poll", gin.H{"id": pollID})
	response.OK(c, gin.H{"id": pollID, "closed": true})
}

// Results handles GET /polls/:id/results?segments=true.
func (h *Handler) Results(c *gin.Context) {
	pollID := c.Param("id")
	results := h.engine.PollResults(pollID, c.Query("segments") == "true")
	if results == nil {
		response.NotFound(c, "poll not found")
		return
	}
	response.OK(c, results)
}

// List handles GET /session/polls.
func (h *Handler) List(c *gin.Context) {
	response.OK(c, gin.H{"polls": h.engine.Polls()})
}
