package csvstore

import (
	"context"
	"strconv"
	"strings"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var userHeader = []string{
	"id", "name", "email", "year", "major", "skills", "interests",
	"x_factor", "can_teach", "wants_to_learn", "accommodation_need",
}

type UserStore interface {
	List(ctx context.Context) ([]types.User, error)
	GetByID(ctx context.Context, id int) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	// Append assigns the next id (row count + 1) and returns it.
	Append(ctx context.Context, u types.User) (int, error)
}

type userStore struct {
	t *table
}

func NewUserStore(dir string, log *logger.Logger) UserStore {
	return &userStore{t: newTable(dir, "users.csv", userHeader, log)}
}

func (s *userStore) List(ctx context.Context) ([]types.User, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.listLocked(), nil
}

func (s *userStore) listLocked() []types.User {
	rows := s.t.readRows()
	users := make([]types.User, 0, len(rows))
	for _, row := range rows {
		u, ok := userFromRow(row)
		if !ok {
			s.t.log.Warn("Skipping malformed user row", "columns", len(row))
			continue
		}
		users = append(users, u)
	}
	return users
}

func (s *userStore) GetByID(ctx context.Context, id int) (*types.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *userStore) Append(ctx context.Context, u types.User) (int, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	u.ID = len(s.t.readRows()) + 1
	if err := s.t.appendRow(userToRow(u)); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func userToRow(u types.User) []string {
	return []string{
		strconv.Itoa(u.ID), u.Name, u.Email, u.Year, u.Major, u.Skills,
		u.Interests, u.XFactor, u.CanTeach, u.WantsToLearn, u.AccommodationNeed,
	}
}

func userFromRow(row []string) (types.User, bool) {
	if len(row) < len(userHeader) {
		return types.User{}, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return types.User{}, false
	}
	return types.User{
		ID:                id,
		Name:              row[1],
		Email:             row[2],
		Year:              row[3],
		Major:             row[4],
		Skills:            row[5],
		Interests:         row[6],
		XFactor:           row[7],
		CanTeach:          row[8],
		WantsToLearn:      row[9],
		AccommodationNeed: row[10],
	}, true
}
