package analytics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/event-booster/backend/internal/scoring"
	"github.com/event-booster/backend/internal/session"
	"github.com/event-booster/backend/pkg/response"
)

// TrackRequest is the body for POST /session/events.
type TrackRequest struct {
	User string                 `json:"user" binding:"required"`
	Type string                 `json:"type" binding:"required"`
	Data map[string]interface{} `json:"data"`
}

// Handler serves engagement analytics over the session engine plus the
// heuristic scoring helpers.
type Handler struct {
	engine *session.Engine
}

// NewHandler creates an analytics handler.
func NewHandler(engine *session.Engine) *Handler {
	return &Handler{engine: engine}
}

// Track handles POST /session/events. The type string is not validated;
// unknown types score with weight 1.
func (h *Handler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	h.engine.TrackEvent(req.User, req.Type, req.Data)
	response.Created(c, gin.H{"tracked": true})
}

// Score handles GET /session/score?window=5 (minutes).
func (h *Handler) Score(c *gin.Context) {
	window, err := strconv.Atoi(c.DefaultQuery("window", "5"))
	if err != nil || window < 1 {
		response.BadRequest(c, "invalid window")
		return
	}
	score := h.engine.EngagementScore(time.Duration(window) * time.Minute)
	response.OK(c, gin.H{"engagement_score": score, "window_minutes": window})
}

// Heatmap handles GET /session/heatmap?intervals=12. The heatmap always spans
// the trailing hour; intervals only changes bucket width.
func (h *Handler) Heatmap(c *gin.Context) {
	intervals, err := strconv.Atoi(c.DefaultQuery("intervals", "12"))
	if err != nil || intervals < 1 {
		response.BadRequest(c, "invalid intervals")
		return
	}
	response.OK(c, gin.H{"heatmap": h.engine.Heatmap(intervals)})
}

// Insights handles GET /session/insights.
func (h *Handler) Insights(c *gin.Context) {
	response.OK(c, h.engine.LiveInsights())
}

// Export handles GET /session/export: the one-shot full session dump.
func (h *Handler) Export(c *gin.Context) {
	response.OK(c, h.engine.ExportSessionData())
}

// WordCloud handles GET /session/wordcloud.
func (h *Handler) WordCloud(c *gin.Context) {
	response.OK(c, gin.H{"text": h.engine.WordCloudText()})
}

// PredictEngagement handles POST /scoring/engagement.
func (h *Handler) PredictEngagement(c *gin.Context) {
	var features scoring.EngagementFeatures
	if err := c.ShouldBindJSON(&features); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, gin.H{"engagement_score": scoring.PredictEngagement(features)})
}

// PredictChurn handles POST /scoring/churn.
func (h *Handler) PredictChurn(c *gin.Context) {
	var in scoring.ChurnInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, scoring.PredictChurnRisk(in))
}

// ROI handles POST /scoring/roi.
func (h *Handler) ROI(c *gin.Context) {
	var in scoring.ROIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, scoring.CalculateROI(in))
}

// AutoReplyRequest is the body for POST /scoring/auto-reply.
type AutoReplyRequest struct {
	Question string `json:"question" binding:"required"`
}

// AutoReply handles POST /scoring/auto-reply.
func (h *Handler) AutoReply(c *gin.Context) {
	var req AutoReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, scoring.AutoReply(req.Question))
}
