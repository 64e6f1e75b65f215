// Package wallet — handlers.go: HTTP-обработчики баланса, пополнений и историй.
package wallet

import (
	"errors"
	"fmt"
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

// Balance — GET /users/:user_id/wallet
func (h *Handler) Balance(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), userID)
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка чтения баланса")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, gin.H{"wallet": balance})
	}
}

// TopUp — POST /users/:user_id/wallet/topup
func (h *Handler) TopUp(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount."})
		return
	}

	amount, err := h.service.TopUp(c.Request.Context(), userID, req.Amount)
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount."})
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка пополнения")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Top up failed."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Top up %s successful.", amount), "user_id": userID})
	}
}

// History — GET /users/:user_id/history
func (h *Handler) History(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	list, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка истории")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// WalletHistory — GET /users/:user_id/history/wallet
func (h *Handler) WalletHistory(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	list, err := h.service.WalletHistory(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка истории кошелька")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching wallet history."})
		return
	}
	if list == nil {
		list = []*Transaction{}
	}
	c.JSON(http.StatusOK, list)
}

// PurchaseHistory — GET /users/:user_id/history/purchases
func (h *Handler) PurchaseHistory(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	list, err := h.service.PurchaseHistory(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка истории покупок")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// AdminLedger — GET /admin/ledger
func (h *Handler) AdminLedger(c *gin.Context) {
	list, err := h.service.AdminLedger(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка сводного журнала")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching admin transaction history."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ResetWallets — POST /admin/wallets/reset
func (h *Handler) ResetWallets(c *gin.Context) {
	n, err := h.service.ResetAllWallets(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка сброса балансов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during wallet reset."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All wallets reset.", "accounts": n})
}
