package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type RateUserInput struct {
	Rating int
	Review string
}

// RatingSummary reports the average rounded to one decimal; Average is nil
// when the user has no ratings yet, never a zero placeholder.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// ReviewView is one received rating with the rater's name resolved.
type ReviewView struct {
	RaterID   int       `json:"rater_id"`
	RaterName string    `json:"rater_name"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	Timestamp time.Time `json:"timestamp"`
}

type RatingService interface {
	RateUser(ctx context.Context, ratedID int, input RateUserInput) error
	Summary(ctx context.Context, userID int) (*RatingSummary, error)
	Reviews(ctx context.Context, userID int) ([]ReviewView, error)
}

type ratingService struct {
	log         *logger.Logger
	ratingStore csvstore.RatingStore
	userService UserService
}

func NewRatingService(log *logger.Logger, ratingStore csvstore.RatingStore, userService UserService) RatingService {
	return &ratingService{
		log:         log.With("service", "RatingService"),
		ratingStore: ratingStore,
		userService: userService,
	}
}

func (rs *ratingService) RateUser(ctx context.Context, ratedID int, input RateUserInput) error {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return fmt.Errorf("Missing request data: %w", err)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return fmt.Errorf("Rating must be between 1 and 5")
	}
	if ratedID == rd.UserID {
		return fmt.Errorf("You cannot rate yourself")
	}
	if err := rs.ratingStore.Upsert(ctx, types.Rating{
		RaterID: rd.UserID,
		RatedID: ratedID,
		Rating:  input.Rating,
		Review:  strings.TrimSpace(input.Review),
	}); err != nil {
		return fmt.Errorf("Failed to store rating: %w", err)
	}
	rs.log.Info("Rating recorded", "user_id", rd.UserID, "rated_id", ratedID)
	return nil
}

func (rs *ratingService) Summary(ctx context.Context, userID int) (*RatingSummary, error) {
	ratings, err := rs.ratingStore.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to list ratings: %w", err)
	}
	summary := &RatingSummary{Count: len(ratings)}
	if len(ratings) == 0 {
		return summary, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
	summary.Average = &avg
	return summary, nil
}

func (rs *ratingService) Reviews(ctx context.Context, userID int) ([]ReviewView, error) {
	ratings, err := rs.ratingStore.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to list ratings: %w", err)
	}
	out := make([]ReviewView, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, ReviewView{
			RaterID:   r.RaterID,
			RaterName: rs.userService.DisplayName(ctx, r.RaterID),
			Rating:    r.Rating,
			Review:    r.Review,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}
