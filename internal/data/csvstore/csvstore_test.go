package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestUserStoreRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewUserStore(dir, testLogger(t))
	ctx := context.Background()

	u := types.User{
		Name:              "Alice Chen",
		Email:             "alice@campus.edu",
		Year:              "2",
		Major:             "CS",
		Skills:            "Python, Guitar",
		Interests:         "AI, Music",
		XFactor:           "Can solve a Rubik's cube blindfolded",
		CanTeach:          "Python",
		WantsToLearn:      "Guitar",
		AccommodationNeed: "None",
	}
	id, err := store.Append(ctx, u)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id != 1 {
		t.Fatalf("first id: got=%d want=1", id)
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("List len: got=%d want=1", len(users))
	}
	u.ID = id
	if users[0] != u {
		t.Fatalf("round-trip mismatch:\n got=%+v\nwant=%+v", users[0], u)
	}
}

func TestUserStoreSequentialIDs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewUserStore(dir, testLogger(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		id, err := store.Append(ctx, types.User{Name: "u", Email: "u@campus.edu"})
		if err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
		if id != i {
			t.Fatalf("id #%d: got=%d want=%d", i, id, i)
		}
	}
}

func TestUserStoreMissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	store := NewUserStore(t.TempDir(), testLogger(t))
	users, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("List on missing file: got=%d rows, want 0", len(users))
	}
}

func TestUserStoreCorruptFileIsEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "users.csv")
	if err := os.WriteFile(path, []byte("id,name\n\"unterminated"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := NewUserStore(dir, testLogger(t))
	users, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("List on corrupt file: got=%d rows, want 0", len(users))
	}
}

func TestUserStoreLookups(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewUserStore(dir, testLogger(t))
	ctx := context.Background()

	id, err := store.Append(ctx, types.User{Name: "Alice", Email: "Alice@Campus.edu"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	byID, err := store.GetByID(ctx, id)
	if err != nil || byID == nil || byID.Name != "Alice" {
		t.Fatalf("GetByID: got=%+v err=%v", byID, err)
	}
	if missing, _ := store.GetByID(ctx, 999); missing != nil {
		t.Fatalf("GetByID(999): got=%+v want nil", missing)
	}

	// Email lookup is case-insensitive.
	byEmail, err := store.GetByEmail(ctx, "alice@campus.EDU")
	if err != nil || byEmail == nil || byEmail.ID != id {
		t.Fatalf("GetByEmail: got=%+v err=%v", byEmail, err)
	}
}

func TestRatingStoreUpsertIsIdempotentPerPair(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewRatingStore(dir, testLogger(t))
	ctx := context.Background()

	if err := store.Upsert(ctx, types.Rating{RaterID: 1, RatedID: 2, Rating: 4, Review: "ok"}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := store.Upsert(ctx, types.Rating{RaterID: 1, RatedID: 2, Rating: 5, Review: "better"}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	ratings, err := store.ListForUser(ctx, 2)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("rows for (1,2): got=%d want=1", len(ratings))
	}
	if ratings[0].Rating != 5 || ratings[0].Review != "better" {
		t.Fatalf("upserted row: got rating=%d review=%q, want 5 %q", ratings[0].Rating, ratings[0].Review, "better")
	}
}

func TestRatingStoreDistinctPairsAccumulate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewRatingStore(dir, testLogger(t))
	ctx := context.Background()

	pairs := []types.Rating{
		{RaterID: 1, RatedID: 2, Rating: 5},
		{RaterID: 3, RatedID: 2, Rating: 3},
		{RaterID: 1, RatedID: 4, Rating: 4},
	}
	for _, r := range pairs {
		if err := store.Upsert(ctx, r); err != nil {
			t.Fatalf("Upsert %+v: %v", r, err)
		}
	}

	ratings, err := store.ListForUser(ctx, 2)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("rows for rated=2: got=%d want=2", len(ratings))
	}
}

func TestConnectionStoreListsEitherSide(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewConnectionStore(dir, testLogger(t))
	ctx := context.Background()

	rows := []types.Connection{
		{User1ID: 1, User2ID: 2, ConnectionType: "peer_match"},
		{User1ID: 3, User2ID: 1, ConnectionType: "dorm_interest_7"},
		{User1ID: 2, User2ID: 3, ConnectionType: "peer_match"},
	}
	for _, c := range rows {
		if err := store.Append(ctx, c); err != nil {
			t.Fatalf("Append %+v: %v", c, err)
		}
	}

	conns, err := store.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(conns) != 2 {
		t.Fatalf("connections for user 1: got=%d want=2", len(conns))
	}
}

func TestConnectionStoreAllowsDuplicatePairs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewConnectionStore(dir, testLogger(t))
	ctx := context.Background()

	for _, typ := range []string{"peer_match", "dorm_interest_3", "peer_match"} {
		if err := store.Append(ctx, types.Connection{User1ID: 1, User2ID: 2, ConnectionType: typ}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	conns, err := store.ListForUser(ctx, 2)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(conns) != 3 {
		t.Fatalf("append-only log: got=%d rows, want 3", len(conns))
	}
}

func TestCredentialStoreVerify(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewCredentialStore(dir, testLogger(t))
	ctx := context.Background()

	hash := mustHash(t, "s3cret")
	if err := store.Append(ctx, types.Credential{Email: "alice@campus.edu", PasswordHash: hash}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	ok, err := store.Verify(ctx, "ALICE@campus.edu", "s3cret")
	if err != nil || !ok {
		t.Fatalf("Verify with right password: ok=%v err=%v", ok, err)
	}
	ok, err = store.Verify(ctx, "alice@campus.edu", "wrong")
	if err != nil || ok {
		t.Fatalf("Verify with wrong password: ok=%v err=%v", ok, err)
	}
	ok, err = store.Verify(ctx, "nobody@campus.edu", "s3cret")
	if err != nil || ok {
		t.Fatalf("Verify for unknown email: ok=%v err=%v", ok, err)
	}

	exists, err := store.EmailExists(ctx, "Alice@Campus.edu")
	if err != nil || !exists {
		t.Fatalf("EmailExists: got=%v err=%v", exists, err)
	}
}

func TestListingStoreRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewListingStore(dir, testLogger(t))
	ctx := context.Background()

	l := types.Listing{
		UserID:      1,
		Type:        "furniture",
		Title:       "Study Desk with Chair",
		Description: "Good condition, pickup only",
		Location:    "Dorm B, Room 301",
		Price:       "Free",
		Status:      "available",
	}
	id, err := store.Append(ctx, l)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id != 1 {
		t.Fatalf("first listing id: got=%d want=1", id)
	}

	listings, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	l.ID = id
	if len(listings) != 1 || listings[0] != l {
		t.Fatalf("round-trip mismatch:\n got=%+v\nwant=%+v", listings, l)
	}
}
