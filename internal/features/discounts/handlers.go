// Package discounts — handlers.go: админский CRUD кодов и предпросмотр скидки.
package discounts

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

// Create — POST /admin/discounts
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields or invalid number values (must be positive)."})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields or invalid number values (must be positive)."})
	case errors.Is(err, common.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"message": "Discount code name already exists."})
	case err != nil:
		log.WithError(err).Error("Ошибка создания кода")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during code creation."})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Discount code created successfully.", "code_id": id})
	}
}

// List — GET /admin/discounts
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка списка кодов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Delete — DELETE /admin/discounts/:code_id
func (h *Handler) Delete(c *gin.Context) {
	codeID, err := common.ParamID(c, "code_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Code ID."})
		return
	}

	err = h.service.Delete(c.Request.Context(), int32(codeID))
	switch {
	case errors.Is(err, common.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Discount code not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка удаления кода")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Discount code deleted successfully."})
	}
}

// Apply — POST /users/:user_id/basket/discount (предпросмотр, без мутаций)
func (h *Handler) Apply(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Discount code is required."})
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), userID, req.CodeName)
	switch {
	case errors.Is(err, common.ErrBasketItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Basket is empty."})
	case errors.Is(err, common.ErrCodeInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired discount code."})
	case errors.Is(err, common.ErrCodeAlreadyUsed):
		c.JSON(http.StatusConflict, gin.H{"message": "You have already used this discount code."})
	case err != nil:
		log.WithError(err).Error("Ошибка предпросмотра скидки")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during discount application."})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":        "Discount applied.",
			"code_name":      preview.CodeName,
			"subtotal_price": preview.Subtotal,
			"discount_value": preview.Value,
			"final_price":    preview.Final,
		})
	}
}
