// Package checkout — handlers.go: HTTP-поверхность покупки корзины.
package checkout

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

// Purchase — POST /users/:user_id/purchase-basket
func (h *Handler) Purchase(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	// Тело опционально: пустое тело — покупка без кода.
	var req Request
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
	}

	receipt, err := h.service.Checkout(c.Request.Context(), userID, req.CodeName)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case errors.Is(err, common.ErrAlreadyOwned):
		c.JSON(http.StatusConflict, gin.H{"message": "One or more games are already in your library."})
	case errors.Is(err, common.ErrCodeInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired discount code."})
	case errors.Is(err, common.ErrCodeAlreadyUsed):
		c.JSON(http.StatusConflict, gin.H{"message": "You have already used this discount code."})
	case errors.Is(err, common.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"message": "Insufficient wallet balance."})
	case err != nil:
		log.WithError(err).Error("Ошибка покупки корзины")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during purchase."})
	case receipt.PurchasedCount == 0:
		c.JSON(http.StatusOK, gin.H{"message": "Basket is empty. Nothing purchased.", "purchased_count": 0})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":         "Purchase successful.",
			"reference":       receipt.Reference,
			"subtotal_price":  receipt.Subtotal,
			"discount_value":  receipt.DiscountValue,
			"final_price":     receipt.FinalPrice,
			"purchased_count": receipt.PurchasedCount,
			"items":           receipt.Lines,
		})
	}
}
