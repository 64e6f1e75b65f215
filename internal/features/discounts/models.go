// Package discounts — скидочные коды с бюджетом погашений.
// models.go описывает строку discount_codes и запросы.
package discounts

import "github.com/shopspring/decimal"

// Code — скидочный код. Remaining инициализируется значением MaxUser
// и только убывает; код исчерпан, когда Remaining достигает нуля.
type Code struct {
	CodeID    int32           `json:"code_id"`
	CodeName  string          `json:"code_name"`
	Value     decimal.Decimal `json:"discount_value"`
	Remaining int32           `json:"remaining_user"`
	MaxUser   int32           `json:"max_user"`
}

// CreateRequest — тело POST /admin/discounts.
type CreateRequest struct {
	CodeName string `json:"code_name" binding:"required"`
	Value    string `json:"discount_value" binding:"required"`
	MaxUser  int32  `json:"max_user" binding:"required"`
}

// ApplyRequest — тело POST /users/:user_id/basket/discount (предпросмотр).
type ApplyRequest struct {
	CodeName string `json:"code_name" binding:"required"`
}

// Preview — результат предпросмотра скидки для корзины.
type Preview struct {
	CodeName string          `json:"code_name"`
	Subtotal decimal.Decimal `json:"subtotal_price"`
	Value    decimal.Decimal `json:"discount_value"`
	Final    decimal.Decimal `json:"final_price"`
}
