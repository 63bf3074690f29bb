package services

import (
	"context"
	"fmt"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// AnonymousName is used whenever a referenced user cannot be resolved.
const AnonymousName = "Anonymous"

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	GetByID(ctx context.Context, id int) (*types.User, error)
	ListUsers(ctx context.Context) ([]types.User, error)
	DisplayName(ctx context.Context, id int) string
}

type userService struct {
	log       *logger.Logger
	userStore csvstore.UserStore
}

func NewUserService(log *logger.Logger, userStore csvstore.UserStore) UserService {
	return &userService{
		log:       log.With("service", "UserService"),
		userStore: userStore,
	}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}
	user, err := us.userStore.GetByID(ctx, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}
	return user, nil
}

func (us *userService) GetByID(ctx context.Context, id int) (*types.User, error) {
	user, err := us.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("User not found")
	}
	return user, nil
}

func (us *userService) ListUsers(ctx context.Context) ([]types.User, error) {
	users, err := us.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list users: %w", err)
	}
	return users, nil
}

// DisplayName resolves a user id to a name, falling back to AnonymousName
// when the id is unknown or the store cannot be read.
func (us *userService) DisplayName(ctx context.Context, id int) string {
	user, err := us.userStore.GetByID(ctx, id)
	if err != nil || user == nil {
		return AnonymousName
	}
	return user.Name
}
