package csvstore

import (
	"context"
	"strconv"
	"strings"
	"time"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var connectionHeader = []string{"user1_id", "user2_id", "connection_type", "timestamp"}

// timeLayout matches the timestamps the original data files carry.
const timeLayout = "2006-01-02 15:04:05"

type ConnectionStore interface {
	// Append adds a row to the log. Duplicate pairs are allowed; the log is
	// never deduplicated or rewritten.
	Append(ctx context.Context, c types.Connection) error
	List(ctx context.Context) ([]types.Connection, error)
	ListForUser(ctx context.Context, userID int) ([]types.Connection, error)
}

type connectionStore struct {
	t *table
}

func NewConnectionStore(dir string, log *logger.Logger) ConnectionStore {
	return &connectionStore{t: newTable(dir, "connections.csv", connectionHeader, log)}
}

func (s *connectionStore) Append(ctx context.Context, c types.Connection) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	row := []string{
		strconv.Itoa(c.User1ID), strconv.Itoa(c.User2ID),
		c.ConnectionType, c.Timestamp.Format(timeLayout),
	}
	return s.t.appendRow(row)
}

func (s *connectionStore) List(ctx context.Context) ([]types.Connection, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	rows := s.t.readRows()
	conns := make([]types.Connection, 0, len(rows))
	for _, row := range rows {
		c, ok := connectionFromRow(row)
		if !ok {
			s.t.log.Warn("Skipping malformed connection row", "columns", len(row))
			continue
		}
		conns = append(conns, c)
	}
	return conns, nil
}

func (s *connectionStore) ListForUser(ctx context.Context, userID int) ([]types.Connection, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	conns := make([]types.Connection, 0, len(all))
	for _, c := range all {
		if c.Involves(userID) {
			conns = append(conns, c)
		}
	}
	return conns, nil
}

func connectionFromRow(row []string) (types.Connection, bool) {
	if len(row) < len(connectionHeader) {
		return types.Connection{}, false
	}
	u1, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return types.Connection{}, false
	}
	u2, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return types.Connection{}, false
	}
	return types.Connection{
		User1ID:        u1,
		User2ID:        u2,
		ConnectionType: row[2],
		Timestamp:      parseTimestamp(row[3]),
	}, true
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(timeLayout, raw); err == nil {
		return ts
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	return time.Time{}
}
