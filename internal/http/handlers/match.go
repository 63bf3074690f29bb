package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/match"
	"github.com/unisync/unisync-backend/internal/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// POST /match/session
func (mh *MatchHandler) StartSession(c *gin.Context) {
	var req struct {
		Major     string   `json:"major"`
		Year      string   `json:"year"`
		Skills    []string `json:"skills"`
		Interests []string `json:"interests"`
		Query     string   `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	candidates, err := mh.matchService.StartSession(c.Request.Context(), match.Filters{
		Major:     req.Major,
		Year:      req.Year,
		Skills:    req.Skills,
		Interests: req.Interests,
		Query:     req.Query,
	})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "session_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"candidates": candidates})
}

// GET /match/next
func (mh *MatchHandler) Next(c *gin.Context) {
	candidate, err := mh.matchService.Next(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "next_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"candidate": candidate, "exhausted": candidate == nil})
}

// POST /match/pass
func (mh *MatchHandler) Pass(c *gin.Context) {
	var req struct {
		UserID int `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := mh.matchService.Pass(c.Request.Context(), req.UserID); err != nil {
		response.RespondError(c, http.StatusBadRequest, "pass_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// POST /match/connect
func (mh *MatchHandler) Connect(c *gin.Context) {
	var req struct {
		UserID int `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	candidate, err := mh.matchService.Connect(c.Request.Context(), req.UserID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "connect_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"match": candidate})
}

// POST /match/reset
func (mh *MatchHandler) Reset(c *gin.Context) {
	if err := mh.matchService.Reset(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusBadRequest, "reset_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /match/matches
func (mh *MatchHandler) Matches(c *gin.Context) {
	matches, err := mh.matchService.Matches(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "matches_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"matches": matches})
}
