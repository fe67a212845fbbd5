// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", nil)
		return
	}

	session, err := h.authService.SignIn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			// Rendered inline by the sign-in form, never a redirect.
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error(), nil)
		case errors.Is(err, services.ErrProviderUnavailable):
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "AUTH_UNAVAILABLE", "Sign-in is currently unavailable", nil)
		default:
			if validationErrs := utils.GetValidationErrors(err); len(validationErrs) > 0 {
				utils.ValidationErrorResponse(c, validationErrs)
				return
			}
			utils.InternalErrorResponse(c, "")
		}
		return
	}

	utils.SuccessResponse(c, session)
}

// POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Get("access_token")
	tokenStr, _ := token.(string)

	h.authService.SignOut(c.Request.Context(), tokenStr)
	utils.SuccessResponse(c, gin.H{"signed_out": true})
}

// GET /v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	token, _ := c.Get("access_token")
	tokenStr, _ := token.(string)

	state, identity := h.authService.SessionFor(tokenStr)
	utils.SuccessResponse(c, gin.H{
		"state": state,
		"user":  identity,
	})
}
