// Package lottery — numbers.go: генерация шестизначных номеров билетов.
package lottery

import (
	"fmt"
	"math/rand"
)

// randSource абстрагирует источник случайности ради детерминированных тестов.
type randSource interface {
	Intn(n int) int
}

// FormatNumber приводит число 0..999999 к шестизначному виду с ведущими нулями.
func FormatNumber(n int) string {
	return fmt.Sprintf("%06d", n)
}

// RandomNumbers выдаёт count уникальных в рамках партии шестизначных номеров.
// Уникальность относительно уже существующих билетов обеспечивает БД
// (UNIQUE + ON CONFLICT DO NOTHING), здесь дедуплицируется только партия.
func RandomNumbers(rng randSource, count int) []string {
	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		n := FormatNumber(rng.Intn(1000000))
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

var _ randSource = (*rand.Rand)(nil)
