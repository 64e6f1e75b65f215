// Package prizes — таблица призовых разрядов, розыгрыш и выплата выигрышей.
//
// Разряды 1, 2, 3 разыгрываются случайным билетом из пула; разряд 4
// производен от первого (совпадение трёх последних цифр), разряд 5
// разыгрывается случайным двузначным суффиксом. Повторный розыгрыш
// разряда сначала сбрасывает прежних победителей.
package prizes

import (
	"github.com/shopspring/decimal"
)

// Prize — строка таблицы разрядов.
type Prize struct {
	PrizeTier   int16           `json:"prize_tier"`
	LottoNumber string          `json:"lotto_number"`
	PrizeMoney  decimal.Decimal `json:"prize_money"`
}

// Winner — выигравший билет разряда.
type Winner struct {
	LottoID     int64  `json:"lotto_id"`
	LottoNumber string `json:"lotto_number"`
	Status      string `json:"status"`
	UID         *int64 `json:"uid,omitempty"`
	IsClaimed   bool   `json:"is_claimed"`
}

// DrawResult — итог розыгрыша разряда. Для разрядов 1-3 заполнен номер
// билета-победителя; для 5 — разыгранный суффикс; Tier4Count считается
// только при розыгрыше первого разряда.
type DrawResult struct {
	PrizeTier   int16  `json:"prizeTier"`
	LottoNumber string `json:"lottoRand"`
	WinnerUID   *int64 `json:"uidGetPrize,omitempty"`
	Winners     int    `json:"winners"`
	Tier4Suffix string `json:"tier4Suffix,omitempty"`
	Tier4Count  int    `json:"tier4Winners,omitempty"`
}

// ClaimResult — итог выплаты.
type ClaimResult struct {
	LottoNumber string          `json:"lotto_number"`
	PrizeTier   int16           `json:"prize_tier"`
	PrizeMoney  decimal.Decimal `json:"prize_money"`
	NewBalance  decimal.Decimal `json:"new_balance"`
}

// ClaimCheck — ответ GET /prizes/checkClaim: выигрышность без выплаты.
type ClaimCheck struct {
	LottoNumber string          `json:"lotto_number"`
	PrizeTier   int16           `json:"prize_tier"`
	PrizeMoney  decimal.Decimal `json:"prize_money"`
	IsClaimed   bool            `json:"is_claimed"`
	CanClaim    bool            `json:"can_claim"`
}
