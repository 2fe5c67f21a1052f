package chat

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/internal/realtime"
	"github.com/event-booster/backend/internal/session"
	"github.com/event-booster/backend/pkg/response"
)

// MessageRequest is the body for POST /session/chat.
type MessageRequest struct {
	User    string `json:"user" binding:"required"`
	Message string `json:"message" binding:"required"`
	Segment string `json:"segment"`
}

// ReactionRequest is the body for POST /chat/:id/reactions.
type ReactionRequest struct {
	User  string `json:"user" binding:"required"`
	Emoji string `json:"emoji" binding:"required"`
}

// Handler handles chat HTTP endpoints over the session engine.
type Handler struct {
	engine    *session.Engine
	hub       *realtime.Hub
	sessionID string
}

// NewHandler creates a chat handler.
func NewHandler(engine *session.Engine, hub *realtime.Hub, sessionID string) *Handler {
	return &Handler{engine: engine, hub: hub, sessionID: sessionID}
}

// Create handles POST /session/chat.
func (h *Handler) Create(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	id := h.engine.AddMessage(req.User, req.Message, req.Segment)
	h.hub.BroadcastToSession(h.sessionID, "chat_message", gin.H{
		"id": id, "user_name": req.User, "message": req.Message,
	})
	response.Created(c, gin.H{"id": id})
}

// React handles POST /chat/:id/reactions. Repeating the same user+emoji pair
// on a message is a no-op.
func (h *Handler) React(c *gin.Context) {
	id := c.Param("id")

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !h.engine.AddReaction(id, req.Emoji, req.User) {
		response.NotFound(c, "message not found")
		return
	}
	h.hub.BroadcastToSession(h.sessionID, "message_reaction", gin.H{
		"id": id, "emoji": req.Emoji, "user_name": req.User,
	})
	response.OK(c, gin.H{"id": id})
}

// List handles GET /session/chat?limit=50, newest first.
func (h *Handler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		response.BadRequest(c, "invalid limit")
		return
	}
	response.OK(c, gin.H{"messages": h.engine.Messages(limit)})
}
