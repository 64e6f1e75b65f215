package lottery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery(t *testing.T) {
	t.Run("без статуса ищем по всему пулу", func(t *testing.T) {
		q := searchQuery("")
		assert.NotContains(t, q, "AND status", "поиск без фильтра не должен сужать по статусу")
		assert.Contains(t, q, "lotto_number LIKE")
	})

	t.Run("статус сужает выборку", func(t *testing.T) {
		q := searchQuery(StatusSold)
		assert.Contains(t, q, "status = $2")
		assert.True(t, strings.HasSuffix(q, "ORDER BY lotto_number"))
	})
}
