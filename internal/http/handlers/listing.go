package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type ListingHandler struct {
	listingService services.ListingService
}

func NewListingHandler(listingService services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GET /listings?type=&location=&min_price=&max_price=&free_only=
func (lh *ListingHandler) List(c *gin.Context) {
	filters := services.ListingFilters{
		Type:     c.Query("type"),
		Location: c.Query("location"),
		FreeOnly: c.Query("free_only") == "true",
	}
	if raw := c.Query("min_price"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_min_price", err)
			return
		}
		filters.MinPrice = &n
	}
	if raw := c.Query("max_price"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_max_price", err)
			return
		}
		filters.MaxPrice = &n
	}

	listings, err := lh.listingService.ListListings(c.Request.Context(), filters)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "listings_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"listings": listings})
}

// POST /listings
func (lh *ListingHandler) Create(c *gin.Context) {
	var req struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Price       string `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	listing, err := lh.listingService.CreateListing(c.Request.Context(), services.CreateListingInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"listing": listing})
}

// POST /listings/:id/interest
func (lh *ListingHandler) ExpressInterest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_listing_id", err)
		return
	}
	if err := lh.listingService.ExpressInterest(c.Request.Context(), id); err != nil {
		response.RespondError(c, http.StatusBadRequest, "interest_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
