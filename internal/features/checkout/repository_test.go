package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackpothub/internal/common"
)

// queryTx отвечает на запросы первых шагов покупки заранее заданными
// данными. Остальные методы pgx.Tx в проверяемых путях не вызываются.
type queryTx struct {
	pgx.Tx
	userExists bool
}

func (f *queryTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	if strings.Contains(sql, "SELECT EXISTS(SELECT 1 FROM users") {
		return boolRow(f.userExists)
	}
	return errRow{sql: sql}
}

func (f *queryTx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	if strings.Contains(sql, "FROM basket") {
		return emptyRows{}, nil
	}
	return nil, fmt.Errorf("неожиданный запрос: %s", sql)
}

type boolRow bool

func (b boolRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = bool(b)
	return nil
}

type errRow struct{ sql string }

func (r errRow) Scan(...any) error {
	return fmt.Errorf("неожиданный запрос: %s", r.sql)
}

type emptyRows struct{ pgx.Rows }

func (emptyRows) Next() bool { return false }
func (emptyRows) Err() error { return nil }
func (emptyRows) Close()     {}

func TestCheckoutTx(t *testing.T) {
	ctx := context.Background()

	t.Run("несуществующий аккаунт получает отказ до проверки корзины", func(t *testing.T) {
		_, err := checkoutTx(ctx, &queryTx{userExists: false}, 99, "")
		assert.ErrorIs(t, err, common.ErrUserNotFound)
	})

	t.Run("пустая корзина существующего аккаунта — успех без покупок", func(t *testing.T) {
		receipt, err := checkoutTx(ctx, &queryTx{userExists: true}, 1, "")
		require.NoError(t, err)
		assert.Equal(t, 0, receipt.PurchasedCount)
		assert.True(t, receipt.FinalPrice.IsZero())
		assert.Empty(t, receipt.Lines)
	})
}
