// Package checkout — движок покупки корзины: одна ACID-транзакция
// от списания кошелька до выдачи игр в библиотеку.
// models.go описывает входы и результат покупки.
package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request — тело POST /users/:user_id/purchase-basket.
type Request struct {
	CodeName string `json:"code_name"`
}

// Line — купленная позиция с долей итоговой цены.
type Line struct {
	GameID int64           `json:"game_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Receipt — итог успешной покупки.
// PurchasedCount == 0 означает покупку пустой корзины: это успех-noop.
type Receipt struct {
	Reference      uuid.UUID       `json:"reference"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountValue  decimal.Decimal `json:"discount_applied"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	PurchasedCount int             `json:"items_purchased"`
	Lines          []Line          `json:"items"`
	BoughtAt       time.Time       `json:"bought_date"`
}
