package services

import (
	"context"
	"fmt"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// SkillOffer is one entry on the exchange board: who teaches or wants what.
type SkillOffer struct {
	UserID   int      `json:"user_id"`
	UserName string   `json:"user_name"`
	Email    string   `json:"email"`
	Major    string   `json:"major"`
	Skills   []string `json:"skills"`
}

// SkillBoard is the two-sided exchange view. Users whose columns hold only
// the unset sentinels are left off the respective side.
type SkillBoard struct {
	Teachers []SkillOffer `json:"teachers"`
	Learners []SkillOffer `json:"learners"`
}

type SkillsService interface {
	Board(ctx context.Context) (*SkillBoard, error)
}

type skillsService struct {
	log       *logger.Logger
	userStore csvstore.UserStore
}

func NewSkillsService(log *logger.Logger, userStore csvstore.UserStore) SkillsService {
	return &skillsService{
		log:       log.With("service", "SkillsService"),
		userStore: userStore,
	}
}

func (ss *skillsService) Board(ctx context.Context) (*SkillBoard, error) {
	users, err := ss.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list users: %w", err)
	}

	board := &SkillBoard{}
	for _, u := range users {
		if teach := u.TeachableSkills(); len(teach) > 0 {
			board.Teachers = append(board.Teachers, SkillOffer{
				UserID:   u.ID,
				UserName: u.Name,
				Email:    u.Email,
				Major:    u.Major,
				Skills:   teach,
			})
		}
		if learn := u.LearningGoals(); len(learn) > 0 {
			board.Learners = append(board.Learners, SkillOffer{
				UserID:   u.ID,
				UserName: u.Name,
				Email:    u.Email,
				Major:    u.Major,
				Skills:   learn,
			})
		}
	}
	return board, nil
}
