// Package users — handlers.go принимает HTTP-запросы аутентификации и профиля.
// Обработчики только разбирают вход, зовут сервис и мапят ошибки на статусы.
package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"jackpothub/internal/common"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register — POST /register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username, email and password are required"})
		return
	}

	id, err := h.service.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, common.ErrEmailTaken), errors.Is(err, common.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case err != nil:
		log.WithError(err).Error("Регистрация не удалась")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration."})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully.", "user_id": id})
	}
}

// Login — POST /login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	u, err := h.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, common.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
	case err != nil:
		log.WithError(err).Error("Вход не удался")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login."})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":  "Login Success",
			"user_id":  u.UserID,
			"username": u.Username,
			"role":     u.Role,
			"is_login": true,
		})
	}
}

// Profile — GET /users/:user_id
func (h *Handler) Profile(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	u, err := h.service.Profile(c.Request.Context(), userID)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка чтения профиля")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, u)
	}
}

// UpdateProfile — PUT /users/:user_id
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and email are required"})
		return
	}

	err = h.service.UpdateProfile(c.Request.Context(), userID, req)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found or no changes made."})
	case err != nil:
		log.WithError(err).Error("Ошибка обновления профиля")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during update."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "User information updated successfully."})
	}
}

// List — GET /users
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка списка пользователей")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during fetching all users."})
		return
	}
	c.JSON(http.StatusOK, list)
}
