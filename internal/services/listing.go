package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/unisync/unisync-backend/internal/data/csvstore"
	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/match"
	"github.com/unisync/unisync-backend/internal/platform/ctxutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var priceDigits = regexp.MustCompile(`\d+`)

// ParsePrice extracts a numeric value from a free-text price. "Free" in any
// casing is 0; otherwise the first run of digits wins; unparseable text is -1
// so range filters skip it.
func ParsePrice(raw string) int {
	if strings.Contains(strings.ToLower(raw), "free") {
		return 0
	}
	digits := priceDigits.FindString(raw)
	if digits == "" {
		return -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return n
}

type ListingFilters struct {
	Type     string
	Location string
	MinPrice *int
	MaxPrice *int
	FreeOnly bool
}

type CreateListingInput struct {
	Type        string
	Title       string
	Description string
	Location    string
	Price       string
}

// ListingView is a listing enriched with the seller's display name.
type ListingView struct {
	types.Listing
	SellerName string `json:"seller_name"`
}

type ListingService interface {
	ListListings(ctx context.Context, filters ListingFilters) ([]ListingView, error)
	CreateListing(ctx context.Context, input CreateListingInput) (*types.Listing, error)
	ExpressInterest(ctx context.Context, listingID int) error
}

type listingService struct {
	log             *logger.Logger
	listingStore    csvstore.ListingStore
	connectionStore csvstore.ConnectionStore
	userService     UserService
}

func NewListingService(
	log *logger.Logger,
	listingStore csvstore.ListingStore,
	connectionStore csvstore.ConnectionStore,
	userService UserService,
) ListingService {
	return &listingService{
		log:             log.With("service", "ListingService"),
		listingStore:    listingStore,
		connectionStore: connectionStore,
		userService:     userService,
	}
}

func (ls *listingService) ListListings(ctx context.Context, filters ListingFilters) ([]ListingView, error) {
	listings, err := ls.listingStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list listings: %w", err)
	}

	out := make([]ListingView, 0, len(listings))
	for _, l := range listings {
		if !ls.matches(l, filters) {
			continue
		}
		out = append(out, ListingView{
			Listing:    l,
			SellerName: ls.userService.DisplayName(ctx, l.UserID),
		})
	}
	return out, nil
}

func (ls *listingService) matches(l types.Listing, filters ListingFilters) bool {
	if filters.Type != "" && filters.Type != match.WildcardAll && l.Type != filters.Type {
		return false
	}
	if filters.Location != "" &&
		!strings.Contains(strings.ToLower(l.Location), strings.ToLower(filters.Location)) {
		return false
	}
	price := ParsePrice(l.Price)
	if filters.FreeOnly && price != 0 {
		return false
	}
	if filters.MinPrice != nil && (price < 0 || price < *filters.MinPrice) {
		return false
	}
	if filters.MaxPrice != nil && (price < 0 || price > *filters.MaxPrice) {
		return false
	}
	return true
}

func (ls *listingService) CreateListing(ctx context.Context, input CreateListingInput) (*types.Listing, error) {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return nil, fmt.Errorf("Missing request data: %w", err)
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Price = strings.TrimSpace(input.Price)
	if input.Title == "" {
		return nil, fmt.Errorf("A title is required")
	}
	if input.Price == "" {
		return nil, fmt.Errorf("A price is required")
	}
	if !types.ValidListingType(input.Type) {
		return nil, fmt.Errorf("Unknown listing type: %s", input.Type)
	}

	listing := types.Listing{
		UserID:      rd.UserID,
		Type:        input.Type,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		Price:       input.Price,
		Status:      types.ListingStatusActive,
	}
	id, err := ls.listingStore.Append(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("Failed to store listing: %w", err)
	}
	listing.ID = id
	ls.log.Info("Listing created", "listing_id", id, "user_id", rd.UserID)
	return &listing, nil
}

func (ls *listingService) ExpressInterest(ctx context.Context, listingID int) error {
	rd, err := ctxutil.GetRequestData(ctx)
	if err != nil {
		return fmt.Errorf("Missing request data: %w", err)
	}
	listing, err := ls.listingStore.GetByID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("Failed to load listing: %w", err)
	}
	if listing == nil {
		return fmt.Errorf("Listing not found")
	}
	if err := ls.connectionStore.Append(ctx, types.Connection{
		User1ID:        rd.UserID,
		User2ID:        listing.UserID,
		ConnectionType: fmt.Sprintf("dorm_interest_%d", listing.ID),
	}); err != nil {
		return fmt.Errorf("Failed to record interest: %w", err)
	}
	ls.log.Info("Listing interest recorded", "listing_id", listing.ID, "user_id", rd.UserID)
	return nil
}
