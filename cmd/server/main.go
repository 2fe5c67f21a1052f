// Package main runs the event engagement HTTP server with WebSocket and graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/event-booster/backend/config"
	"github.com/event-booster/backend/internal/activity"
	"github.com/event-booster/backend/internal/analytics"
	"github.com/event-booster/backend/internal/attendees"
	"github.com/event-booster/backend/internal/chat"
	"github.com/event-booster/backend/internal/gamification"
	"github.com/event-booster/backend/internal/middleware"
	"github.com/event-booster/backend/internal/polls"
	"github.com/event-booster/backend/internal/questions"
	"github.com/event-booster/backend/internal/realtime"
	"github.com/event-booster/backend/internal/session"
	"github.com/event-booster/backend/pkg/response"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	roster, err := attendees.NewRepository(cfg.Data.RosterPath)
	if err != nil {
		logger.Fatal("load roster", zap.Error(err), zap.String("path", cfg.Data.RosterPath))
	}

	engine := session.NewEngine()
	hub := realtime.NewHub(logger)
	activityStore := activity.NewStore(cfg.Data.ActivityPath)
	gamificationEngine := gamification.NewEngine()

	sessionID := cfg.Session.ID
	pollHandler := polls.NewHandler(engine, hub, sessionID)
	questionHandler := questions.NewHandler(engine, hub, sessionID)
	chatHandler := chat.NewHandler(engine, hub, sessionID)
	analyticsHandler := analytics.NewHandler(engine)
	gamificationHandler := gamification.NewHandler(gamificationEngine, activityStore, roster)
	attendeeHandler := attendees.NewHandler(roster)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Roster (read-only)
	router.GET("/attendees", attendeeHandler.List)
	router.GET("/attendees/:name", attendeeHandler.GetByName)

	// Polls
	router.POST("/session/polls", pollHandler.Create)
	router.GET("/session/polls", pollHandler.List)
	router.POST("/polls/:id/response", pollHandler.Respond)
	router.POST("/polls/:id/close", pollHandler.Close)
	router.GET("/polls/:id/results", pollHandler.Results)

	// Q&A
	router.POST("/session/questions", questionHandler.Create)
	router.GET("/session/questions", questionHandler.List)
	router.POST("/questions/:id/vote", questionHandler.Vote)
	router.PATCH("/questions/:id/answer", questionHandler.Answer)

	// Chat
	router.POST("/session/chat", chatHandler.Create)
	router.GET("/session/chat", chatHandler.List)
	router.POST("/chat/:id/reactions", chatHandler.React)

	// Engagement analytics
	router.POST("/session/events", analyticsHandler.Track)
	router.GET("/session/score", analyticsHandler.Score)
	router.GET("/session/heatmap", analyticsHandler.Heatmap)
	router.GET("/session/insights", analyticsHandler.Insights)
	router.GET("/session/export", analyticsHandler.Export)
	router.GET("/session/wordcloud", analyticsHandler.WordCloud)

	// Scoring helpers
	router.POST("/scoring/engagement", analyticsHandler.PredictEngagement)
	router.POST("/scoring/churn", analyticsHandler.PredictChurn)
	router.POST("/scoring/roi", analyticsHandler.ROI)
	router.POST("/scoring/auto-reply", analyticsHandler.AutoReply)

	// Gamification
	router.GET("/gamification/leaderboard", gamificationHandler.Leaderboard)
	router.GET("/gamification/badges", gamificationHandler.Catalog)
	router.GET("/users/:name/points", gamificationHandler.Points)
	router.GET("/users/:name/badges", gamificationHandler.Badges)
	router.POST("/users/:name/activities", gamificationHandler.RecordActivity)
	router.GET("/users/:name/connections", gamificationHandler.Connections)
	router.GET("/users/:name/teaser", gamificationHandler.Teaser)
	router.GET("/users/:name/countdown", gamificationHandler.Countdown)
	router.GET("/quiz", gamificationHandler.Quiz)

	// WebSocket feed
	router.GET("/ws", realtime.ServeWs(hub, logger))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
