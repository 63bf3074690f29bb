package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

// CommunityStats is the landing-page counter strip.
type CommunityStats struct {
	ActiveStudents int `json:"active_students"`
	SkillsShared   int `json:"skills_shared"`
	Listings       int `json:"listings"`
	Connections    int `json:"connections"`
}

type StatsService interface {
	Community(ctx context.Context) (*CommunityStats, error)
}

type statsService struct {
	log             *logger.Logger
	userStore       csvstore.UserStore
	listingStore    csvstore.ListingStore
	connectionStore csvstore.ConnectionStore
}

func NewStatsService(
	log *logger.Logger,
	userStore csvstore.UserStore,
	listingStore csvstore.ListingStore,
	connectionStore csvstore.ConnectionStore,
) StatsService {
	return &statsService{
		log:             log.With("service", "StatsService"),
		userStore:       userStore,
		listingStore:    listingStore,
		connectionStore: connectionStore,
	}
}

func (ss *statsService) Community(ctx context.Context) (*CommunityStats, error) {
	stats := &CommunityStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := ss.userStore.List(gctx)
		if err != nil {
			return fmt.Errorf("Failed to list users: %w", err)
		}
		stats.ActiveStudents = len(users)
		for _, u := range users {
			stats.SkillsShared += len(u.TeachableSkills())
		}
		return nil
	})
	g.Go(func() error {
		listings, err := ss.listingStore.List(gctx)
		if err != nil {
			return fmt.Errorf("Failed to list listings: %w", err)
		}
		stats.Listings = len(listings)
		return nil
	})
	g.Go(func() error {
		connections, err := ss.connectionStore.List(gctx)
		if err != nil {
			return fmt.Errorf("Failed to list connections: %w", err)
		}
		stats.Connections = len(connections)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
