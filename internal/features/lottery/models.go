// Package lottery — пул лотерейных билетов: генерация тиража,
// вывод в продажу, снятие с продажи, поиск и покупка билета.
// Жизненный цикл билета: staged -> unsold -> sold.
package lottery

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы билета в пуле.
const (
	StatusStaged = "staged" // сгенерирован, в продажу не выведен
	StatusUnsold = "unsold" // в продаже
	StatusSold   = "sold"   // куплен пользователем
)

// Lotto — строка пула билетов. UID заполнен только у проданных.
type Lotto struct {
	LottoID     int64           `json:"lotto_id"`
	LottoNumber string          `json:"lotto_number"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	UID         *int64          `json:"uid,omitempty"`
	PID         int16           `json:"pid"`
	IsClaimed   bool            `json:"is_claimed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GenerateResult — итог генерации тиража.
type GenerateResult struct {
	Requested int `json:"requested"`
	Inserted  int `json:"inserted"`
}

// BuyRequest — тело POST /lottos/buy.
type BuyRequest struct {
	UID         int64  `json:"uid" binding:"required"`
	LottoNumber string `json:"lotto_number" binding:"required,len=6"`
}
