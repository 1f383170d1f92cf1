package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbook/internal/app"
	"eventbook/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	_, err := h.authService.Register(app.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "all fields are required")
		case errors.Is(err, app.ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusCreated, "registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, "invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   result.Token,
		"user":    result.User.Profile(),
	})
}
