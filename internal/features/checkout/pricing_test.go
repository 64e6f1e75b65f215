package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputePricing(t *testing.T) {
	t.Run("без скидки", func(t *testing.T) {
		p := ComputePricing([]decimal.Decimal{dec("100"), dec("50")}, decimal.Zero)
		assert.True(t, p.Subtotal.Equal(dec("150")))
		assert.True(t, p.Final.Equal(dec("150")))
		require.Len(t, p.Shares, 2)
		assert.True(t, p.Shares[0].Equal(dec("100")))
		assert.True(t, p.Shares[1].Equal(dec("50")))
	})

	t.Run("плоская скидка раскладывается пропорционально", func(t *testing.T) {
		p := ComputePricing([]decimal.Decimal{dec("100"), dec("50")}, dec("20"))
		assert.True(t, p.Subtotal.Equal(dec("150")))
		assert.True(t, p.Final.Equal(dec("130")))
		// 100/150*130 = 86.67, хвост 43.33 у последней позиции
		assert.True(t, p.Shares[0].Equal(dec("86.67")), "share[0] = %s", p.Shares[0])
		assert.True(t, p.Shares[1].Equal(dec("43.33")), "share[1] = %s", p.Shares[1])
	})

	t.Run("скидка больше суммы обнуляет итог", func(t *testing.T) {
		p := ComputePricing([]decimal.Decimal{dec("10"), dec("5")}, dec("100"))
		assert.True(t, p.Final.IsZero())
		for i, s := range p.Shares {
			assert.True(t, s.IsZero(), "share[%d] = %s", i, s)
		}
	})

	t.Run("пустая корзина", func(t *testing.T) {
		p := ComputePricing(nil, dec("20"))
		assert.True(t, p.Subtotal.IsZero())
		assert.True(t, p.Final.IsZero())
		assert.Empty(t, p.Shares)
	})

	t.Run("бесплатные позиции", func(t *testing.T) {
		p := ComputePricing([]decimal.Decimal{dec("0"), dec("0")}, decimal.Zero)
		assert.True(t, p.Final.IsZero())
		assert.True(t, p.Shares[0].IsZero())
		assert.True(t, p.Shares[1].IsZero())
	})

	t.Run("копеечная позиция при большой скидке не уходит в минус", func(t *testing.T) {
		prices := make([]decimal.Decimal, 0, 9)
		for i := 0; i < 8; i++ {
			prices = append(prices, dec("1.00"))
		}
		prices = append(prices, dec("0.01"))

		p := ComputePricing(prices, dec("7.96"))
		require.True(t, p.Final.Equal(dec("0.05")))

		sum := decimal.Zero
		for i, s := range p.Shares {
			assert.False(t, s.IsNegative(), "share[%d] = %s — отрицательная цена позиции", i, s)
			sum = sum.Add(s)
		}
		assert.True(t, sum.Equal(p.Final), "sum %s != final %s", sum, p.Final)
	})

	t.Run("сумма долей равна итогу, доли неотрицательны", func(t *testing.T) {
		cases := [][]string{
			{"33.33", "33.33", "33.34"},
			{"19.99", "49.50", "0.01", "120"},
			{"7", "7", "7"},
		}
		for _, prices := range cases {
			pp := make([]decimal.Decimal, len(prices))
			for i, s := range prices {
				pp[i] = dec(s)
			}
			p := ComputePricing(pp, dec("13.37"))
			sum := decimal.Zero
			for i, s := range p.Shares {
				assert.False(t, s.IsNegative(), "prices %v: share[%d] = %s", prices, i, s)
				sum = sum.Add(s)
			}
			assert.True(t, sum.Equal(p.Final), "prices %v: sum %s != final %s", prices, sum, p.Final)
		}
	})
}
