package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type SkillsHandler struct {
	skillsService services.SkillsService
}

func NewSkillsHandler(skillsService services.SkillsService) *SkillsHandler {
	return &SkillsHandler{skillsService: skillsService}
}

// GET /skills
func (sh *SkillsHandler) Board(c *gin.Context) {
	board, err := sh.skillsService.Board(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "skills_failed", err)
		return
	}
	response.RespondOK(c, board)
}
