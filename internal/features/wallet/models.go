// Package wallet управляет балансом аккаунта и журналом движений средств.
// models.go описывает строки журнала wallet_transactions и отчётов истории.
package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Направление движения средств в wallet_transactions.status:
// 0 — деньги зашли (пополнение, выплата приза), 1 — деньги вышли (покупка).
const (
	DirectionIn  = 0
	DirectionOut = 1
)

// Transaction — одна запись журнала кошелька.
type Transaction struct {
	ID     int64           `json:"wt_id"`
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Status int16           `json:"status"`
	Date   time.Time       `json:"date"`
}

// HistoryEntry — строка объединённой истории (кошелёк + покупки).
type HistoryEntry struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// PurchaseHistoryEntry — строка истории покупок игр.
type PurchaseHistoryEntry struct {
	GameName     string          `json:"game_name"`
	Price        decimal.Decimal `json:"price"`
	BoughtDate   time.Time       `json:"bought_date"`
	DiscountCode *string         `json:"discount_code"`
}

// AdminLedgerEntry — строка сводного журнала для администратора.
type AdminLedgerEntry struct {
	Type     string          `json:"type"`
	UserID   int64           `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	GameName *string         `json:"game_name,omitempty"`
}

// TopUpRequest — тело POST /users/:user_id/topup.
type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}
