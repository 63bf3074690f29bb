package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type UserHandler struct {
	userService   services.UserService
	avatarService services.AvatarService
}

func NewUserHandler(userService services.UserService, avatarService services.AvatarService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		avatarService: avatarService,
	}
}

// GET /user
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "me_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"me": me})
}

// GET /users
func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "users_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"users": users})
}

// GET /users/:id/avatar
func (uh *UserHandler) GetAvatar(c *gin.Context) {
	if uh.avatarService == nil {
		response.RespondError(c, http.StatusNotFound, "avatars_disabled", fmt.Errorf("Avatar generation is not configured"))
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	user, err := uh.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "user_not_found", err)
		return
	}
	png, err := uh.avatarService.UserAvatarPNG(c.Request.Context(), *user)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "avatar_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
