// Package games — handlers.go: HTTP-обработчики витрины, админского CRUD,
// корзины и библиотеки.
package games

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// CreateGame — POST /admin/games
func (h *Handler) CreateGame(c *gin.Context) {
	var req UpsertGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: name, price, and type_id are mandatory."})
		return
	}

	id, err := h.service.CreateGame(c.Request.Context(), req)
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be a valid non-negative number."})
	case err != nil:
		log.WithError(err).Error("Ошибка создания игры")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during game creation."})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Game created successfully.", "game_id": id})
	}
}

// UpdateGame — PUT /admin/games/:game_id
func (h *Handler) UpdateGame(c *gin.Context) {
	gameID, err := common.ParamID(c, "game_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Game ID in request parameters."})
		return
	}

	var req UpsertGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields."})
		return
	}

	err = h.service.UpdateGame(c.Request.Context(), gameID, req)
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be a valid non-negative number."})
	case errors.Is(err, common.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found or no changes made."})
	case err != nil:
		log.WithError(err).Error("Ошибка обновления игры")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during game update."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Game updated successfully."})
	}
}

// DeleteGame — DELETE /admin/games/:game_id
func (h *Handler) DeleteGame(c *gin.Context) {
	gameID, err := common.ParamID(c, "game_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Game ID."})
		return
	}

	err = h.service.DeleteGame(c.Request.Context(), gameID)
	switch {
	case errors.Is(err, common.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка удаления игры")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during game deletion."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully."})
	}
}

// CreateType — POST /admin/games/types
func (h *Handler) CreateType(c *gin.Context) {
	var req struct {
		TypeName string `json:"typename" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TypeName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Game type name (typename) is required."})
		return
	}

	id, err := h.service.CreateType(c.Request.Context(), strings.TrimSpace(req.TypeName))
	if err != nil {
		log.WithError(err).Error("Ошибка создания типа игры")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during type creation."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Game type created.", "type_id": id})
}

// ListTypes — GET /games/types
func (h *Handler) ListTypes(c *gin.Context) {
	list, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка списка типов")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching game types."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Latest — GET /games/latest
func (h *Handler) Latest(c *gin.Context) {
	list, err := h.service.Latest(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка витрины")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// All — GET /games
func (h *Handler) All(c *gin.Context) {
	list, err := h.service.All(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка полного каталога")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error fetching all games."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Search — GET /games/search?q=&type_id=
func (h *Handler) Search(c *gin.Context) {
	var f SearchFilter
	f.Term = strings.TrimSpace(c.Query("q"))
	if raw := strings.TrimSpace(c.Query("type_id")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 32); err == nil {
			f.TypeID = int32(id)
		}
	}

	list, err := h.service.Search(c.Request.Context(), f)
	if err != nil {
		log.WithError(err).Error("Ошибка поиска игр")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during game search."})
		return
	}
	if len(list) == 0 && (f.Term != "" || f.TypeID > 0) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No games found matching the criteria."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// TopSellers — GET /games/top-sellers
func (h *Handler) TopSellers(c *gin.Context) {
	list, err := h.service.TopSellers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Ошибка топа продаж")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Details — GET /games/:game_id
func (h *Handler) Details(c *gin.Context) {
	gameID, err := common.ParamID(c, "game_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Game ID."})
		return
	}

	g, err := h.service.GameDetails(c.Request.Context(), gameID)
	switch {
	case errors.Is(err, common.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
	case err != nil:
		log.WithError(err).Error("Ошибка карточки игры")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, g)
	}
}

// AddToBasket — POST /users/:user_id/basket/:game_id
func (h *Handler) AddToBasket(c *gin.Context) {
	userID, errU := common.ParamID(c, "user_id")
	gameID, errG := common.ParamID(c, "game_id")
	if errU != nil || errG != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID or Game ID."})
		return
	}

	bid, err := h.service.AddToBasket(c.Request.Context(), userID, gameID)
	switch {
	case errors.Is(err, common.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Game not found."})
	case errors.Is(err, common.ErrAlreadyOwned):
		c.JSON(http.StatusConflict, gin.H{"message": "Game already exists in your library."})
	case errors.Is(err, common.ErrAlreadyInBasket):
		c.JSON(http.StatusConflict, gin.H{"message": "Game already in basket."})
	case err != nil:
		log.WithError(err).Error("Ошибка добавления в корзину")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Game added to basket successfully.", "bid": bid})
	}
}

// Basket — GET /users/:user_id/basket
func (h *Handler) Basket(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	list, err := h.service.Basket(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка чтения корзины")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}

// RemoveFromBasket — DELETE /users/:user_id/basket/:bid
func (h *Handler) RemoveFromBasket(c *gin.Context) {
	userID, errU := common.ParamID(c, "user_id")
	bid, errB := common.ParamID(c, "bid")
	if errU != nil || errB != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID or Basket ID."})
		return
	}

	err := h.service.RemoveFromBasket(c.Request.Context(), userID, bid)
	switch {
	case errors.Is(err, common.ErrBasketItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in basket or access denied."})
	case err != nil:
		log.WithError(err).Error("Ошибка удаления из корзины")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from basket."})
	}
}

// Library — GET /users/:user_id/library
func (h *Handler) Library(c *gin.Context) {
	userID, err := common.ParamID(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid User ID."})
		return
	}

	list, err := h.service.Library(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Ошибка чтения библиотеки")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, list)
}
