package attendees

import (
	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/pkg/response"
)

// Handler serves the read-only attendee roster.
type Handler struct {
	repo *Repository
}

// NewHandler creates an attendees handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /attendees.
func (h *Handler) List(c *gin.Context) {
	response.OK(c, gin.H{"attendees": h.repo.List()})
}

// GetByName handles GET /attendees/:name.
func (h *Handler) GetByName(c *gin.Context) {
	a, ok := h.repo.GetByName(c.Param("name"))
	if !ok {
		response.NotFound(c, "attendee not found")
		return
	}
	response.OK(c, gin.H{
		"attendee": a,
		"segment":  a.Segment(),
	})
}
