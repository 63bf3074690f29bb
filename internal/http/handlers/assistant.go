package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type AssistantHandler struct {
	assistantService services.AssistantService
}

func NewAssistantHandler(assistantService services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// POST /assistant/query
func (ah *AssistantHandler) Query(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	answer, err := ah.assistantService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "assistant_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"answer": answer})
}

// GET /assistant/history
func (ah *AssistantHandler) History(c *gin.Context) {
	history, err := ah.assistantService.History(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "history_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"history": history})
}
