package lottery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "000000", FormatNumber(0))
	assert.Equal(t, "000042", FormatNumber(42))
	assert.Equal(t, "999999", FormatNumber(999999))
}

func TestRandomNumbers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("нужное количество и формат", func(t *testing.T) {
		nums := RandomNumbers(rng, 500)
		require.Len(t, nums, 500)
		for _, n := range nums {
			assert.Len(t, n, 6)
		}
	})

	t.Run("в партии нет повторов", func(t *testing.T) {
		nums := RandomNumbers(rng, 2000)
		seen := make(map[string]struct{}, len(nums))
		for _, n := range nums {
			_, dup := seen[n]
			require.False(t, dup, "повтор номера %s", n)
			seen[n] = struct{}{}
		}
	})

	t.Run("нулевая партия", func(t *testing.T) {
		assert.Empty(t, RandomNumbers(rng, 0))
	})
}
