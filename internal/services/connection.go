package services

import (
	"context"
	"fmt"
	"time"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// ConnectionView is one log entry seen from the requesting user's side.
type ConnectionView struct {
	OtherID        int       `json:"other_id"`
	OtherName      string    `json:"other_name"`
	ConnectionType string    `json:"connection_type"`
	Timestamp      time.Time `json:"timestamp"`
}

type ConnectionService interface {
	ListMine(ctx context.Context) ([]ConnectionView, error)
}

type connectionService struct {
	log             *logger.Logger
	connectionStore csvstore.ConnectionStore
	userService     UserService
}

func NewConnectionService(log *logger.Logger, connectionStore csvstore.ConnectionStore, userService UserService) ConnectionService {
	return &connectionService{
		log:             log.With("service", "ConnectionService"),
		connectionStore: connectionStore,
		userService:     userService,
	}
}

func (cs *connectionService) ListMine(ctx context.Context) ([]ConnectionView, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	conns, err := cs.connectionStore.ListForUser(ctx, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("Failed to list connections: %w", err)
	}
	out := make([]ConnectionView, 0, len(conns))
	for _, c := range conns {
		otherID := c.User2ID
		if otherID == rd.UserID {
			otherID = c.User1ID
		}
		out = append(out, ConnectionView{
			OtherID:        otherID,
			OtherName:      cs.userService.DisplayName(ctx, otherID),
			ConnectionType: c.ConnectionType,
			Timestamp:      c.Timestamp,
		})
	}
	return out, nil
}
