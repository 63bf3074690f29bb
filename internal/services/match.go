package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/match"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// ConnectionTypePeerMatch tags connections created through the swipe deck.
const ConnectionTypePeerMatch = "peer_match"

// Candidate pairs a user with their compatibility score
// relative to the requesting user.
type Candidate struct {
	User  types.User `json:"user"`
	Score int        `json:"compatibility_score"`
}

type MatchService interface {
	StartSession(ctx context.Context, filters match.Filters) ([]Candidate, error)
	Next(ctx context.Context) (*Candidate, error)
	Pass(ctx context.Context, userID int) error
	Connect(ctx context.Context, userID int) (*Candidate, error)
	Reset(ctx context.Context) error
	Matches(ctx context.Context) ([]Candidate, error)
}

// sessionEntry is one live deck: the cursor state plus the filters the deck
// was started with, so the candidate list can be rebuilt against fresh data.
type sessionEntry struct {
	session *match.Session
	filters match.Filters
}

type matchService struct {
	log             *logger.Logger
	userStore       csvstore.UserStore
	connectionStore csvstore.ConnectionStore

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewMatchService(log *logger.Logger, userStore csvstore.UserStore, connectionStore csvstore.ConnectionStore) MatchService {
	return &matchService{
		log:             log.With("service", "MatchService"),
		userStore:       userStore,
		connectionStore: connectionStore,
		sessions:        make(map[uuid.UUID]*sessionEntry),
	}
}

func (ms *matchService) StartSession(ctx context.Context, filters match.Filters) ([]Candidate, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	me, err := ms.userStore.GetByID(ctx, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if me == nil {
		return nil, fmt.Errorf("User not found")
	}
	users, err := ms.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list users: %w", err)
	}

	candidates := match.FilterUsers(users, rd.UserID, filters)

	ms.mu.Lock()
	ms.sessions[rd.SessionID] = &sessionEntry{session: match.NewSession(), filters: filters}
	ms.mu.Unlock()

	ms.log.Info("Match session started", "user_id", rd.UserID, "candidates", len(candidates))
	return ms.scored(*me, candidates), nil
}

func (ms *matchService) Next(ctx context.Context) (*Candidate, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	me, session, candidates, err := ms.sessionState(ctx, rd)
	if err != nil {
		return nil, err
	}
	current := session.Current(candidates)
	if current == nil {
		return nil, nil
	}
	c := ms.score(*me, *current)
	return &c, nil
}

func (ms *matchService) Pass(ctx context.Context, userID int) error {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return fmt.Errorf("Missing request data: %w", err)
	}
	_, session, _, err := ms.sessionState(ctx, rd)
	if err != nil {
		return err
	}
	session.Pass(userID)
	return nil
}

func (ms *matchService) Connect(ctx context.Context, userID int) (*Candidate, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	me, session, _, err := ms.sessionState(ctx, rd)
	if err != nil {
		return nil, err
	}
	other, err := ms.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if other == nil {
		return nil, fmt.Errorf("User not found")
	}

	session.Connect(*other)

	if err := ms.connectionStore.Append(ctx, types.Connection{
		User1ID:        rd.UserID,
		User2ID:        other.ID,
		ConnectionType: ConnectionTypePeerMatch,
	}); err != nil {
		return nil, fmt.Errorf("Failed to record connection: %w", err)
	}

	ms.log.Info("Users connected", "user_id", rd.UserID, "other_id", other.ID)
	c := ms.score(*me, *other)
	return &c, nil
}

func (ms *matchService) Reset(ctx context.Context) error {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return fmt.Errorf("Missing request data: %w", err)
	}
	_, session, _, err := ms.sessionState(ctx, rd)
	if err != nil {
		return err
	}
	session.Reset()
	return nil
}

func (ms *matchService) Matches(ctx context.Context) ([]Candidate, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	me, session, _, err := ms.sessionState(ctx, rd)
	if err != nil {
		return nil, err
	}
	return ms.scored(*me, session.Matches()), nil
}

// sessionState loads the requester and their live session, creating an
// unfiltered session on first use so Next works without an explicit start.
func (ms *matchService) sessionState(ctx context.Context, rd *ctxutil.RequestData) (*types.User, *match.Session, []types.User, error) {
	me, err := ms.userStore.GetByID(ctx, rd.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if me == nil {
		return nil, nil, nil, fmt.Errorf("User not found")
	}
	users, err := ms.userStore.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Failed to list users: %w", err)
	}
	ms.mu.Lock()
	entry, ok := ms.sessions[rd.SessionID]
	if !ok {
		entry = &sessionEntry{session: match.NewSession()}
		ms.sessions[rd.SessionID] = entry
	}
	ms.mu.Unlock()

	candidates := match.FilterUsers(users, rd.UserID, entry.filters)
	return me, entry.session, candidates, nil
}

func (ms *matchService) score(me, other types.User) Candidate {
	return Candidate{User: other, Score: match.Compatibility(me, other)}
}

func (ms *matchService) scored(me types.User, users []types.User) []Candidate {
	out := make([]Candidate, 0, len(users))
	for _, u := range users {
		out = append(out, ms.score(me, u))
	}
	return out
}
