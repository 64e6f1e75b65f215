// Package lottery — handlers.go: HTTP-поверхность пула билетов.
package lottery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"jackpothub/internal/common"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List — GET /lottos
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка списка билетов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Generate — GET /lottos/newLotto?price=&amount=
func (h *Handler) Generate(c *gin.Context) {
	price := decimal.Zero
	if raw := c.Query("price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price."})
			return
		}
		price = p
	}

	amount := 0
	if raw := c.Query("amount"); raw != "" {
		a, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount."})
			return
		}
		amount = a
	}

	res, err := h.service.Generate(c.Request.Context(), price, amount)
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price and amount must be positive numbers."})
	case err != nil:
		log.WithError(err).Error("Ошибка генерации тиража")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during lotto generation."})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":   "New lotto numbers generated.",
			"requested": res.Requested,
			"inserted":  res.Inserted,
		})
	}
}

// Launch — GET /lottos/launch
func (h *Handler) Launch(c *gin.Context) {
	n, err := h.service.Launch(c.Request.Context())
	switch {
	case errors.Is(err, common.ErrNoStagedLottos):
		c.JSON(http.StatusOK, gin.H{"message": "No staged lottos to launch.", "launched": 0})
	case err != nil:
		log.WithError(err).Error("Ошибка запуска тиража")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during launch."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Lottos launched for sale.", "launched": n})
	}
}

// Delist — GET /lottos/delist
func (h *Handler) Delist(c *gin.Context) {
	n, err := h.service.Delist(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка удаления тиража")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during delist."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staged lottos deleted.", "deleted": n})
}

// Search — GET /lottos/search?number=&status=
// Статус необязателен: без него ищем по всему пулу, включая проданные.
func (h *Handler) Search(c *gin.Context) {
	fragment := c.Query("number")
	if fragment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'number' is required."})
		return
	}
	status := c.Query("status")
	if status != "" && !ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown status. Use staged, unsold or sold."})
		return
	}

	list, err := h.service.Search(c.Request.Context(), fragment, status)
	if err != nil {
		log.WithError(err).Error("Ошибка поиска билетов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during search."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListByStatus — GET /lottos/status/:status
func (h *Handler) ListByStatus(c *gin.Context) {
	status := c.Param("status")
	if !ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown status. Use staged, unsold or sold."})
		return
	}

	list, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		log.WithError(err).Error("Ошибка списка билетов по статусу")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Check — GET /lottos/check?number=
func (h *Handler) Check(c *gin.Context) {
	number := c.Query("number")
	if len(number) != 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Lotto number must be 6 digits."})
		return
	}

	l, err := h.service.GetByNumber(c.Request.Context(), number)
	switch {
	case errors.Is(err, common.ErrLottoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Lotto number not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка проверки билета")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, l)
	}
}

// Buy — POST /lottos/buy
func (h *Handler) Buy(c *gin.Context) {
	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "uid and 6-digit lotto_number are required."})
		return
	}

	l, err := h.service.Buy(c.Request.Context(), req.UID, req.LottoNumber)
	switch {
	case errors.Is(err, common.ErrLottoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Lotto number not found."})
	case errors.Is(err, common.ErrLottoAlreadySold):
		c.JSON(http.StatusConflict, gin.H{"message": "This lotto has already been sold."})
	case errors.Is(err, common.ErrLottoNotOnSale):
		c.JSON(http.StatusConflict, gin.H{"message": "This lotto is not on sale."})
	case errors.Is(err, common.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
	case errors.Is(err, common.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"message": "Insufficient wallet balance."})
	case err != nil:
		log.WithError(err).Error("Ошибка покупки билета")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during lotto purchase."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Lotto purchased successfully.", "lotto": l})
	}
}
