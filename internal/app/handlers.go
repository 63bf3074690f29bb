package app

import (
	httpH "github.com/unisync/unisync-backend/internal/http/handlers"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	User       *httpH.UserHandler
	Match      *httpH.MatchHandler
	Listing    *httpH.ListingHandler
	Skills     *httpH.SkillsHandler
	Rating     *httpH.RatingHandler
	Connection *httpH.ConnectionHandler
	Assistant  *httpH.AssistantHandler
	Stats      *httpH.StatsHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Auth:       httpH.NewAuthHandler(services.Auth),
		User:       httpH.NewUserHandler(services.User, services.Avatar),
		Match:      httpH.NewMatchHandler(services.Match),
		Listing:    httpH.NewListingHandler(services.Listing),
		Skills:     httpH.NewSkillsHandler(services.Skills),
		Rating:     httpH.NewRatingHandler(services.Rating),
		Connection: httpH.NewConnectionHandler(services.Connection),
		Assistant:  httpH.NewAssistantHandler(services.Assistant),
		Stats:      httpH.NewStatsHandler(services.Stats),
	}
}
