package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nwfth/forms-go/dto"
	"github.com/nwfth/forms-go/models"
	"github.com/nwfth/forms-go/response"
	"github.com/nwfth/forms-go/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func userInfo(user *models.User) response.UserInfo {
	return response.UserInfo{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		IsDomainUser: user.IsDomainUser,
	}
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.service.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrDirectoryUnavailable):
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: userInfo(user)})
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.Register(input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": userInfo(user)})
}

// RequestPasswordReset always answers 200 for unknown addresses so the
// endpoint cannot be used to probe which emails exist.
func (h *UserHandler) RequestPasswordReset(c *gin.Context) {
	var input dto.ResetRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.RequestPasswordReset(input); err != nil && !errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "If the account exists, a reset link has been sent"})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.CompletePasswordReset(input); err != nil {
		if errors.Is(err, services.ErrInvalidOrExpiredToken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password has been reset"})
}
