package app

import (
	"github.com/unisync/unisync-backend/internal/data/csvstore"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type Stores struct {
	Users       csvstore.UserStore
	Listings    csvstore.ListingStore
	Connections csvstore.ConnectionStore
	Ratings     csvstore.RatingStore
	Credentials csvstore.CredentialStore
}

func wireStores(dataDir string, log *logger.Logger) Stores {
	log.Info("Wiring stores...", "data_dir", dataDir)
	return Stores{
		Users:       csvstore.NewUserStore(dataDir, log),
		Listings:    csvstore.NewListingStore(dataDir, log),
		Connections: csvstore.NewConnectionStore(dataDir, log),
		Ratings:     csvstore.NewRatingStore(dataDir, log),
		Credentials: csvstore.NewCredentialStore(dataDir, log),
	}
}
