package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

type testStores struct {
	users       csvstore.UserStore
	listings    csvstore.ListingStore
	connections csvstore.ConnectionStore
	ratings     csvstore.RatingStore
	credentials csvstore.CredentialStore
}

func newTestStores(t *testing.T) testStores {
	t.Helper()
	dir := t.TempDir()
	log := testLogger(t)
	return testStores{
		users:       csvstore.NewUserStore(dir, log),
		listings:    csvstore.NewListingStore(dir, log),
		connections: csvstore.NewConnectionStore(dir, log),
		ratings:     csvstore.NewRatingStore(dir, log),
		credentials: csvstore.NewCredentialStore(dir, log),
	}
}

func seedUser(t *testing.T, store csvstore.UserStore, u types.User) int {
	t.Helper()
	id, err := store.Append(context.Background(), u)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

// authedCtx fakes what the auth middleware produces for user userID.
func authedCtx(userID int) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{
		UserID:    userID,
		SessionID: uuid.New(),
	})
}
