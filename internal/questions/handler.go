package questions

import (
	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/internal/models"
	"github.com/event-booster/backend/internal/realtime"
	"github.com/event-booster/backend/internal/session"
	"github.com/event-booster/backend/pkg/response"
)

// CreateRequest is the body for POST /session/questions.
type CreateRequest struct {
	Question string `json:"question" binding:"required"`
	User     string `json:"user" binding:"required"`
	Segment  string `json:"segment"`
	Priority string `json:"priority"`
}

// AnswerRequest is the body for PATCH /questions/:id/answer.
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// Handler handles Q&A HTTP endpoints over the session engine.
type Handler struct {
	engine    *session.Engine
	hub       *realtime.Hub
	sessionID string
}

// NewHandler creates a questions handler.
func NewHandler(engine *session.Engine, hub *realtime.Hub, sessionID string) *Handler {
	return &Handler{engine: engine, hub: hub, sessionID: sessionID}
}

// Create handles POST /session/questions.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	id := h.engine.AddQuestion(req.Question, req.User, req.Segment, req.Priority)
	h.engine.TrackEvent(req.User, models.EventQuestion, map[string]interface{}{
		"user_segment": req.Segment,
	})

	h.hub.BroadcastToSession(h.sessionID, "ask_question", gin.H{
		"id": id, "question": req.Question, "user_name": req.User,
	})
	response.Created(c, gin.H{"id": id})
}

// Vote handles POST /questions/:id/vote. Votes are unlimited per user.
func (h *Handler) Vote(c *gin.Context) {
	id := c.Param("id")
	if !h.engine.VoteQuestion(id) {
		response.NotFound(c, "question not found")
		return
	}
	h.hub.BroadcastToSession(h.sessionID, "question_votes", gin.H{"id": id})
	response.OK(c, gin.H{"id": id, "voted": true})
}

// Answer handles PATCH /questions/:id/answer. Re-answering overwrites.
func (h *Handler) Answer(c *gin.Context) {
	id := c.Param("id")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !h.engine.AnswerQuestion(id, req.Answer) {
		response.NotFound(c, "question not found")
		return
	}
	h.hub.BroadcastToSession(h.sessionID, "question_answered", gin.H{"id": id})
	response.OK(c, gin.H{"id": id, "answered": true})
}

// List handles GET /session/questions?sort=votes|time|priority.
func (h *Handler) List(c *gin.Context) {
	sortBy := c.DefaultQuery("sort", "votes")
	response.OK(c, gin.H{"questions": h.engine.Queue(sortBy)})
}
