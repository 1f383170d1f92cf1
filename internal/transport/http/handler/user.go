package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventbook/internal/app"
	"eventbook/internal/transport/http/middleware"
	"eventbook/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	profiles, err := h.userService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	h.get(c, id)
}

func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}
	h.get(c, id)
}

func (h *UserHandler) get(c *gin.Context, id uint) {
	profile, err := h.userService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	h.update(c, id)
}

// UpdateMe targets the caller's own row, regardless of anything the
// payload might claim.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}
	h.update(c, id)
}

func (h *UserHandler) update(c *gin.Context, id uint) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := h.userService.Update(id, app.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, app.ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "email already registered")
		case errors.Is(err, app.ErrNoChanges):
			response.Error(c, http.StatusBadRequest, "no changes")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "invalid request payload")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "user updated")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "old and new passwords are required")
		return
	}

	err := h.userService.ChangePassword(id, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "old and new passwords are required")
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, app.ErrWrongPassword):
			response.Error(c, http.StatusBadRequest, "old password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "password changed")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	h.delete(c, id)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authorization required")
		return
	}
	h.delete(c, id)
}

func (h *UserHandler) delete(c *gin.Context, id uint) {
	if err := h.userService.Delete(id); err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}
	response.Message(c, http.StatusOK, "user deleted")
}

// parseID reads the :id route param. A non-numeric id behaves like an id
// that matches nothing.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
