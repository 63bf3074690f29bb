package app

import (
	"github.com/gin-gonic/gin"

	httpx "github.com/unisync/unisync-backend/internal/http"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return httpx.NewRouter(httpx.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,

		AuthMiddleware: middleware.Auth,

		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		UserHandler:       handlers.User,
		MatchHandler:      handlers.Match,
		ListingHandler:    handlers.Listing,
		SkillsHandler:     handlers.Skills,
		RatingHandler:     handlers.Rating,
		ConnectionHandler: handlers.Connection,
		AssistantHandler:  handlers.Assistant,
		StatsHandler:      handlers.Stats,
	})
}
