// Package games — витрина магазина: каталог, типы, корзина и библиотека.
// models.go описывает строки каталога и связанные запросы.
package games

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game представляет позицию каталога.
type Game struct {
	GameID      int64           `json:"game_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ReleaseDate time.Time       `json:"release_date"`
	Description *string         `json:"description"`
	Image       *string         `json:"image"`
	TypeID      int32           `json:"type_id"`
	TypeName    string          `json:"type,omitempty"`
}

// GameType — категория каталога.
type GameType struct {
	TypeID   int32  `json:"type_id"`
	TypeName string `json:"typename"`
}

// TopSeller — строка отчёта «самые продаваемые».
type TopSeller struct {
	Game
	TotalSold int64 `json:"total_sold"`
}

// BasketItem — позиция корзины вместе с данными игры.
type BasketItem struct {
	BID    int64           `json:"bid"`
	GameID int64           `json:"game_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// LibraryEntry — игра из библиотеки пользователя.
type LibraryEntry struct {
	GameID       int64           `json:"game_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Image        *string         `json:"image"`
	ReleaseDate  time.Time       `json:"release_date"`
	PurchaseDate time.Time       `json:"purchase_date"`
}

// UpsertGameRequest — тело POST/PUT /admin/games.
type UpsertGameRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       string  `json:"price" binding:"required"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	TypeID      int32   `json:"type_id" binding:"required"`
}

// SearchFilter — параметры GET /games/search.
type SearchFilter struct {
	Term   string
	TypeID int32
}
