package csvstore

import (
	"context"
	"strconv"
	"strings"
	"time"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var ratingHeader = []string{"rater_id", "rated_id", "rating", "review", "timestamp"}

type RatingStore interface {
	// Upsert overwrites the row with the same (rater_id, rated_id) pair in
	// place, or appends when no such row exists.
	Upsert(ctx context.Context, r types.Rating) error
	ListForUser(ctx context.Context, ratedID int) ([]types.Rating, error)
}

type ratingStore struct {
	t *table
}

func NewRatingStore(dir string, log *logger.Logger) RatingStore {
	return &ratingStore{t: newTable(dir, "ratings.csv", ratingHeader, log)}
}

func (s *ratingStore) Upsert(ctx context.Context, r types.Rating) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}
	newRow := ratingToRow(r)

	rows := s.t.readRows()
	for i, row := range rows {
		existing, ok := ratingFromRow(row)
		if !ok {
			continue
		}
		if existing.RaterID == r.RaterID && existing.RatedID == r.RatedID {
			rows[i] = newRow
			return s.t.writeRows(rows)
		}
	}
	return s.t.appendRow(newRow)
}

func (s *ratingStore) ListForUser(ctx context.Context, ratedID int) ([]types.Rating, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	rows := s.t.readRows()
	ratings := make([]types.Rating, 0, len(rows))
	for _, row := range rows {
		r, ok := ratingFromRow(row)
		if !ok {
			s.t.log.Warn("Skipping malformed rating row", "columns", len(row))
			continue
		}
		if r.RatedID == ratedID {
			ratings = append(ratings, r)
		}
	}
	return ratings, nil
}

func ratingToRow(r types.Rating) []string {
	return []string{
		strconv.Itoa(r.RaterID), strconv.Itoa(r.RatedID),
		strconv.Itoa(r.Rating), r.Review, r.Timestamp.Format(timeLayout),
	}
}

func ratingFromRow(row []string) (types.Rating, bool) {
	if len(row) < len(ratingHeader) {
		return types.Rating{}, false
	}
	rater, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return types.Rating{}, false
	}
	rated, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return types.Rating{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return types.Rating{}, false
	}
	return types.Rating{
		RaterID:   rater,
		RatedID:   rated,
		Rating:    score,
		Review:    row[3],
		Timestamp: parseTimestamp(row[4]),
	}, true
}
