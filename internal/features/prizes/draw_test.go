package prizes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackpothub/internal/common"
)

func TestTier4Suffix(t *testing.T) {
	t.Run("три последние цифры", func(t *testing.T) {
		suffix, err := Tier4Suffix("123456")
		require.NoError(t, err)
		assert.Equal(t, "456", suffix)
	})

	t.Run("ведущие нули сохраняются", func(t *testing.T) {
		suffix, err := Tier4Suffix("000007")
		require.NoError(t, err)
		assert.Equal(t, "007", suffix)
	})

	t.Run("номер не шестизначный", func(t *testing.T) {
		_, err := Tier4Suffix("123")
		assert.Error(t, err)
		_, err = Tier4Suffix("")
		assert.Error(t, err)
	})
}

func TestRandomTier5Suffix(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := RandomTier5Suffix(rng)
		require.Len(t, s, 2)
		assert.GreaterOrEqual(t, s[0], byte('0'))
		assert.LessOrEqual(t, s[0], byte('9'))
	}
}

func TestCanClaim(t *testing.T) {
	owner := int64(42)
	other := int64(7)

	t.Run("невыигрышный билет", func(t *testing.T) {
		assert.ErrorIs(t, CanClaim(0, &owner, false, owner), common.ErrNotWinning)
	})

	t.Run("чужой билет", func(t *testing.T) {
		assert.ErrorIs(t, CanClaim(2, &other, false, owner), common.ErrNotOwner)
	})

	t.Run("непроданный билет без владельца", func(t *testing.T) {
		assert.ErrorIs(t, CanClaim(2, nil, false, owner), common.ErrNotOwner)
	})

	t.Run("выигрыш уже выплачен", func(t *testing.T) {
		assert.ErrorIs(t, CanClaim(3, &owner, true, owner), common.ErrAlreadyClaimed)
	})

	t.Run("право на выплату", func(t *testing.T) {
		assert.NoError(t, CanClaim(1, &owner, false, owner))
	})
}

func TestDirectTiers(t *testing.T) {
	assert.True(t, DirectTiers[1])
	assert.True(t, DirectTiers[5])
	assert.False(t, DirectTiers[4], "четвёртый разряд производен и напрямую не разыгрывается")
	assert.False(t, DirectTiers[0])
	assert.False(t, DirectTiers[6])
}
