package csvstore

import (
	"context"
	"strconv"
	"strings"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var listingHeader = []string{
	"id", "user_id", "type", "title", "description", "location", "price", "status",
}

type ListingStore interface {
	List(ctx context.Context) ([]types.Listing, error)
	GetByID(ctx context.Context, id int) (*types.Listing, error)
	// Append assigns the next sequential id and returns it.
	Append(ctx context.Context, l types.Listing) (int, error)
}

type listingStore struct {
	t *table
}

func NewListingStore(dir string, log *logger.Logger) ListingStore {
	return &listingStore{t: newTable(dir, "listings.csv", listingHeader, log)}
}

func (s *listingStore) List(ctx context.Context) ([]types.Listing, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	rows := s.t.readRows()
	listings := make([]types.Listing, 0, len(rows))
	for _, row := range rows {
		l, ok := listingFromRow(row)
		if !ok {
			s.t.log.Warn("Skipping malformed listing row", "columns", len(row))
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (s *listingStore) GetByID(ctx context.Context, id int) (*types.Listing, error) {
	listings, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, nil
}

func (s *listingStore) Append(ctx context.Context, l types.Listing) (int, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	l.ID = len(s.t.readRows()) + 1
	row := []string{
		strconv.Itoa(l.ID), strconv.Itoa(l.UserID), l.Type, l.Title,
		l.Description, l.Location, l.Price, l.Status,
	}
	if err := s.t.appendRow(row); err != nil {
		return 0, err
	}
	return l.ID, nil
}

func listingFromRow(row []string) (types.Listing, bool) {
	if len(row) < len(listingHeader) {
		return types.Listing{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return types.Listing{}, false
	}
	userID, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return types.Listing{}, false
	}
	return types.Listing{
		ID:          id,
		UserID:      userID,
		Type:        row[2],
		Title:       row[3],
		Description: row[4],
		Location:    row[5],
		Price:       row[6],
		Status:      row[7],
	}, true
}
