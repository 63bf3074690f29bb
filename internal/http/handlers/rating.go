package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type RatingHandler struct {
	ratingService services.RatingService
}

func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// POST /users/:id/ratings
func (rh *RatingHandler) Rate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	var req struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := rh.ratingService.RateUser(c.Request.Context(), id, services.RateUserInput{
		Rating: req.Rating,
		Review: req.Review,
	}); err != nil {
		response.RespondError(c, http.StatusBadRequest, "rating_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /users/:id/ratings
func (rh *RatingHandler) Ratings(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	summary, err := rh.ratingService.Summary(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "summary_failed", err)
		return
	}
	reviews, err := rh.ratingService.Reviews(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "reviews_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"summary": summary, "reviews": reviews})
}
