// Package prizes — handlers.go: HTTP-поверхность розыгрыша и выплат.
package prizes

import (
	"errors"
	"net/http"
	"strconv"

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

// List — GET /prizes
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.ListPrizes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка списка разрядов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Winners — GET /prizes/:prize/lottos
func (h *Handler) Winners(c *gin.Context) {
	tier, err := strconv.Atoi(c.Param("prize"))
	if err != nil || tier < 1 || tier > 5 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Prize tier must be between 1 and 5."})
		return
	}

	list, err := h.service.WinnersByTier(c.Request.Context(), int16(tier))
	if err != nil {
		log.WithError(err).Error("Ошибка списка победителей")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Draw — GET /prizes/randPrize?prize=&is_sold=
// is_sold=1 ограничивает пул проданными билетами, 0 разыгрывает по
// всему выведенному в продажу пулу. Другие значения отклоняются.
func (h *Handler) Draw(c *gin.Context) {
	tier, err := strconv.Atoi(c.Query("prize"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'prize' is required."})
		return
	}

	var soldOnly bool
	switch c.Query("is_sold") {
	case "0":
		soldOnly = false
	case "1":
		soldOnly = true
	default:
		c.JSON(http.StatusNotFound, gin.H{"message": "Query parameter 'is_sold' must be 0 or 1."})
		return
	}

	res, err := h.service.Draw(c.Request.Context(), int16(tier), soldOnly)
	switch {
	case errors.Is(err, common.ErrPrizeTierInvalid):
		c.JSON(http.StatusNotFound, gin.H{"message": "Prize tier must be 1, 2, 3 or 5. Tier 4 is derived from tier 1."})
	case errors.Is(err, common.ErrNoLottosAvailable):
		c.JSON(http.StatusOK, gin.H{"message": "No lottos available for this draw."})
	case err != nil:
		log.WithError(err).Error("Ошибка розыгрыша")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during draw."})
	default:
		c.JSON(http.StatusOK, res)
	}
}

// CheckClaim — GET /prizes/checkClaim?uid=&lotto_number=
func (h *Handler) CheckClaim(c *gin.Context) {
	userID, err := common.QueryID(c, "uid")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}
	number := c.Query("lotto_number")
	if len(number) != 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Lotto number must be 6 digits."})
		return
	}

	check, err := h.service.CheckClaim(c.Request.Context(), userID, number)
	switch {
	case errors.Is(err, common.ErrLottoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Lotto number not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка проверки выигрыша")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, check)
	}
}

// Claim — GET /prizes/claimPrize?uid=&lotto_number=&can_claim=
// Параметр can_claim принимается, но не влияет на решение: право на
// выплату сервер всегда проверяет сам. Отказы отвечают 200 с
// пояснением: клиент показывает их как обычный результат проверки,
// а не как ошибку запроса.
func (h *Handler) Claim(c *gin.Context) {
	userID, err := common.QueryID(c, "uid")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}
	number := c.Query("lotto_number")
	if len(number) != 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Lotto number must be 6 digits."})
		return
	}

	res, err := h.service.Claim(c.Request.Context(), userID, number)
	switch {
	case errors.Is(err, common.ErrLottoNotFound):
		c.JSON(http.StatusOK, gin.H{"message": "Lotto number not found."})
	case errors.Is(err, common.ErrNotWinning):
		c.JSON(http.StatusOK, gin.H{"message": "This ticket is not a winning ticket."})
	case errors.Is(err, common.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{"message": "You do not own this lottery ticket."})
	case errors.Is(err, common.ErrAlreadyClaimed):
		c.JSON(http.StatusOK, gin.H{"message": "This prize has already been claimed."})
	case err != nil:
		log.WithError(err).Error("Ошибка выплаты выигрыша")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during claim."})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":      "Prize claimed successfully.",
			"lotto_number": res.LottoNumber,
			"prize_tier":   res.PrizeTier,
			"prize_money":  res.PrizeMoney,
			"new_balance":  res.NewBalance,
		})
	}
}
