package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/unisync/unisync-backend/internal/http/handlers"
	httpMW "github.com/unisync/unisync-backend/internal/http/middleware"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler     *httpH.HealthHandler
	AuthHandler       *httpH.AuthHandler
	UserHandler       *httpH.UserHandler
	MatchHandler      *httpH.MatchHandler
	ListingHandler    *httpH.ListingHandler
	SkillsHandler     *httpH.SkillsHandler
	RatingHandler     *httpH.RatingHandler
	ConnectionHandler *httpH.ConnectionHandler
	AssistantHandler  *httpH.AssistantHandler
	StatsHandler      *httpH.StatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/user", cfg.UserHandler.GetMe)
			protected.GET("/users", cfg.UserHandler.List)
			protected.GET("/users/:id/avatar", cfg.UserHandler.GetAvatar)
		}

		// Swipe matching
		if cfg.MatchHandler != nil {
			protected.POST("/match/session", cfg.MatchHandler.StartSession)
			protected.GET("/match/next", cfg.MatchHandler.Next)
			protected.POST("/match/pass", cfg.MatchHandler.Pass)
			protected.POST("/match/connect", cfg.MatchHandler.Connect)
			protected.POST("/match/reset", cfg.MatchHandler.Reset)
			protected.GET("/match/matches", cfg.MatchHandler.Matches)
		}

		// Marketplace
		if cfg.ListingHandler != nil {
			protected.GET("/listings", cfg.ListingHandler.List)
			protected.POST("/listings", cfg.ListingHandler.Create)
			protected.POST("/listings/:id/interest", cfg.ListingHandler.ExpressInterest)
		}

		// Skill exchange board
		if cfg.SkillsHandler != nil {
			protected.GET("/skills", cfg.SkillsHandler.Board)
		}

		// Ratings
		if cfg.RatingHandler != nil {
			protected.GET("/users/:id/ratings", cfg.RatingHandler.Ratings)
			protected.POST("/users/:id/ratings", cfg.RatingHandler.Rate)
		}

		// Connections log
		if cfg.ConnectionHandler != nil {
			protected.GET("/connections", cfg.ConnectionHandler.ListMine)
		}

		// Campus assistant
		if cfg.AssistantHandler != nil {
			protected.POST("/assistant/query", cfg.AssistantHandler.Query)
			protected.GET("/assistant/history", cfg.AssistantHandler.History)
		}

		// Community stats
		if cfg.StatsHandler != nil {
			protected.GET("/stats", cfg.StatsHandler.Community)
		}
	}

	return r
}
