// Package prizes — draw.go: чистая логика розыгрыша, без SQL.
package prizes

import (
	"fmt"

	"jackpothub/internal/common"
)

// randSource абстрагирует источник случайности ради детерминированных тестов.
type randSource interface {
	Intn(n int) int
}

// DirectTiers — разряды, разыгрываемые напрямую. Четвёртый производен
// от первого и отдельно не разыгрывается.
var DirectTiers = map[int16]bool{1: true, 2: true, 3: true, 5: true}

// Tier4Suffix возвращает три последние цифры номера первого разряда:
// билеты с тем же хвостом выигрывают четвёртый разряд.
func Tier4Suffix(tier1Number string) (string, error) {
	if len(tier1Number) != 6 {
		return "", fmt.Errorf("некорректный номер первого разряда %q", tier1Number)
	}
	return tier1Number[3:], nil
}

// RandomTier5Suffix разыгрывает двузначный хвост пятого разряда.
func RandomTier5Suffix(rng randSource) string {
	return fmt.Sprintf("%02d", rng.Intn(100))
}

// CanClaim проверяет право на выплату по состоянию билета.
func CanClaim(pid int16, uid *int64, isClaimed bool, userID int64) error {
	if pid == 0 {
		return common.ErrNotWinning
	}
	if uid == nil || *uid != userID {
		return common.ErrNotOwner
	}
	if isClaimed {
		return common.ErrAlreadyClaimed
	}
	return nil
}
