// Package checkout — pricing.go считает итог корзины и раскладывает
// плоскую скидку по позициям пропорционально их доле в сумме.
package checkout

import (
	"sort"

	"github.com/shopspring/decimal"
)

var cent = decimal.New(1, -2)

// Pricing — результат расчёта: итог и по-позиционные цены.
// Инвариант: сумма Shares в точности равна Final, каждая доля >= 0.
type Pricing struct {
	Subtotal decimal.Decimal
	Final    decimal.Decimal
	Shares   []decimal.Decimal
}

// ComputePricing считает subtotal, final = max(0, subtotal - discount)
// и пропорциональные доли позиций: share_i = price_i / subtotal * final.
// Доли сначала округляются вниз до копеек, затем недобранные копейки
// раздаются по одной позициям с наибольшим остатком округления. Сумма
// долей сходится с итогом копейка в копейку, и ни одна доля не уходит
// в минус.
func ComputePricing(prices []decimal.Decimal, discount decimal.Decimal) Pricing {
	subtotal := decimal.Zero
	for _, p := range prices {
		subtotal = subtotal.Add(p)
	}

	final := subtotal.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	shares := make([]decimal.Decimal, len(prices))
	for i := range shares {
		shares[i] = decimal.Zero
	}
	// final > 0 влечёт subtotal > 0, деление ниже безопасно
	if len(prices) == 0 || final.IsZero() {
		return Pricing{Subtotal: subtotal, Final: final, Shares: shares}
	}

	allocated := decimal.Zero
	remainders := make([]decimal.Decimal, len(prices))
	for i, p := range prices {
		raw := p.Mul(final).Div(subtotal)
		shares[i] = raw.RoundDown(2)
		remainders[i] = raw.Sub(shares[i])
		allocated = allocated.Add(shares[i])
	}

	idx := make([]int, len(prices))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return remainders[idx[a]].GreaterThan(remainders[idx[b]])
	})

	cents := int(final.Sub(allocated).Div(cent).IntPart())
	for k := 0; k < cents; k++ {
		i := idx[k%len(idx)]
		shares[i] = shares[i].Add(cent)
	}

	return Pricing{Subtotal: subtotal, Final: final, Shares: shares}
}
