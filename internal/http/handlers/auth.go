package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisync/unisync-backend/internal/http/response"
	"github.com/unisync/unisync-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name              string `json:"name"`
		Email             string `json:"email"`
		Password          string `json:"password"`
		ConfirmPassword   string `json:"confirm_password"`
		Year              string `json:"year"`
		Major             string `json:"major"`
		Skills            string `json:"skills"`
		Interests         string `json:"interests"`
		XFactor           string `json:"x_factor"`
		CanTeach          string `json:"can_teach"`
		WantsToLearn      string `json:"wants_to_learn"`
		AccommodationNeed string `json:"accommodation_need"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := ah.authService.RegisterUser(c.Request.Context(), services.RegisterInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		ConfirmPassword:   req.ConfirmPassword,
		Year:              req.Year,
		Major:             req.Major,
		Skills:            req.Skills,
		Interests:         req.Interests,
		XFactor:           req.XFactor,
		CanTeach:          req.CanTeach,
		WantsToLearn:      req.WantsToLearn,
		AccommodationNeed: req.AccommodationNeed,
	})
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "registration_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"user": user})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	accessToken, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	expiresIn := int(ah.authService.GetAccessTTL().Seconds())
	response.RespondOK(c, gin.H{
		"access_token": accessToken,
		"expires_in":   expiresIn,
	})
}
