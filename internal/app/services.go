package app

import (
	"os"
	"strings"

	"github.com/unisync/unisync-backend/internal/platform/llm"
	"github.com/unisync/unisync-backend/internal/platform/logger"
	"github.com/unisync/unisync-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	Match      services.MatchService
	Listing    services.ListingService
	Skills     services.SkillsService
	Rating     services.RatingService
	Connection services.ConnectionService
	Assistant  services.AssistantService
	Avatar     services.AvatarService
	Stats      services.StatsService
}

func wireServices(log *logger.Logger, cfg Config, stores Stores) Services {
	log.Info("Wiring services...")

	// Avatars need a TTF; without one the feature is off and registration
	// proceeds without generating images.
	var avatarService services.AvatarService
	if strings.TrimSpace(os.Getenv("AVATAR_FONT")) != "" {
		svc, err := services.NewAvatarService(log, cfg.DataDir)
		if err != nil {
			log.Warn("Could not init AvatarService, avatars disabled", "error", err)
		} else {
			avatarService = svc
		}
	} else {
		log.Info("AVATAR_FONT not set, avatars disabled")
	}

	var llmClient llm.Client
	if len(cfg.LLM.APIKeys) > 0 {
		client, err := llm.NewClient(log, llm.Config{
			BaseURL:    cfg.LLM.BaseURL,
			Model:      cfg.LLM.Model,
			APIKeys:    cfg.LLM.APIKeys,
			MaxRetries: cfg.LLM.MaxRetries,
			Timeout:    cfg.LLM.Timeout,
		})
		if err != nil {
			log.Warn("Could not init LLM client, assistant runs in demo mode", "error", err)
		} else {
			llmClient = client
		}
	} else {
		log.Info("No LLM API keys configured, assistant runs in demo mode")
	}

	authService := services.NewAuthService(log, stores.Users, stores.Credentials, avatarService, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	userService := services.NewUserService(log, stores.Users)

	return Services{
		Auth:       authService,
		User:       userService,
		Match:      services.NewMatchService(log, stores.Users, stores.Connections),
		Listing:    services.NewListingService(log, stores.Listings, stores.Connections, userService),
		Skills:     services.NewSkillsService(log, stores.Users),
		Rating:     services.NewRatingService(log, stores.Ratings, userService),
		Connection: services.NewConnectionService(log, stores.Connections, userService),
		Assistant:  services.NewAssistantService(log, llmClient, stores.Users, stores.Listings),
		Avatar:     avatarService,
		Stats:      services.NewStatsService(log, stores.Users, stores.Listings, stores.Connections),
	}
}
