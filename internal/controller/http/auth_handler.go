package http

import (
	"errors"
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" binding:"required"`
	NewPassword             string `json:"new_password" binding:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" binding:"required,eqfield=NewPassword"`
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticate an admin and issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, usecase.ErrNotAdmin):
			response.Error(c, http.StatusForbidden, "Admin access required")
		default:
			h.logger.Error("Login failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Logged in successfully", gin.H{
		"token":      result.Token,
		"token_type": "Bearer",
		"expires_in": result.ExpiresIn,
		"user":       result.User,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the presented token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")

	if err := h.authUseCase.Logout(c.Request.Context(), jti); err != nil {
		h.logger.Error("Logout failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Logged out successfully", nil)
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.Me(c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		h.logger.Error("Failed to load current user: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "", gin.H{"user": user})
}

// Refresh godoc
// @Summary      Refresh token
// @Description  Revoke the presented token and issue a new one
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	result, err := h.authUseCase.Refresh(
		c.Request.Context(),
		c.GetString("user_id"),
		c.GetString("token_jti"),
	)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
			return
		}
		h.logger.Error("Token refresh failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	response.OK(c, "Token refreshed", gin.H{
		"token":      result.Token,
		"token_type": "Bearer",
		"expires_in": result.ExpiresIn,
	})
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Update the authenticated user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Passwords"
// @Success      200  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Failure      422  {object}  response.Envelope
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, bindingErrors(err))
		return
	}

	err := h.authUseCase.ChangePassword(c.GetString("user_id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWrongPassword):
			response.ValidationError(c, map[string]string{
				"current_password": "The current password is incorrect",
			})
		case errors.Is(err, usecase.ErrNotFound):
			response.Error(c, http.StatusUnauthorized, "Unauthenticated")
		default:
			h.logger.Error("Password change failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.OK(c, "Password changed successfully", nil)
}
