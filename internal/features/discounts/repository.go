// Package discounts — repository.go: CRUD скидочных кодов и проверки
// погашений. Уменьшение счётчика remaining_user здесь намеренно
// отсутствует — его выполняет только транзакция движка покупок.
package discounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"jackpothub/internal/common"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create добавляет код; remaining_user стартует с max_user.
// Дубликат имени ловим по коду нарушения уникальности 23505.
func (r *Repository) Create(ctx context.Context, name string, value decimal.Decimal, maxUser int32) (int32, error) {
	query := `
		INSERT INTO discount_codes (code_name, discount_value, remaining_user, max_user)
		VALUES ($1, $2, $3, $3)
		RETURNING code_id
	`
	var id int32
	err := r.db.QueryRow(ctx, query, name, value, maxUser).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, common.ErrDuplicateCode
		}
		return 0, fmt.Errorf("ошибка создания кода: %w", err)
	}
	return id, nil
}

// GetByName возвращает код по имени; отсутствие — common.ErrCodeInvalid.
func (r *Repository) GetByName(ctx context.Context, name string) (*Code, error) {
	query := `
		SELECT code_id, code_name, discount_value, remaining_user, max_user
		FROM discount_codes
		WHERE code_name = $1
	`
	var code Code
	err := r.db.QueryRow(ctx, query, name).Scan(&code.CodeID, &code.CodeName, &code.Value, &code.Remaining, &code.MaxUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrCodeInvalid
		}
		return nil, fmt.Errorf("ошибка чтения кода: %w", err)
	}
	return &code, nil
}

// UsedByAccount проверяет по журналу покупок, погашал ли аккаунт код.
// Отдельной таблицы использований нет: источник истины — purchases.
func (r *Repository) UsedByAccount(ctx context.Context, userID int64, codeID int32) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM purchases WHERE user_id = $1 AND code_id = $2)`
	var used bool
	if err := r.db.QueryRow(ctx, query, userID, codeID).Scan(&used); err != nil {
		return false, fmt.Errorf("ошибка проверки погашений: %w", err)
	}
	return used, nil
}

// List возвращает все коды.
func (r *Repository) List(ctx context.Context) ([]*Code, error) {
	query := `
		SELECT code_id, code_name, discount_value, remaining_user, max_user
		FROM discount_codes
		ORDER BY code_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса кодов: %w", err)
	}
	defer rows.Close()

	var list []*Code
	for rows.Next() {
		var c Code
		if err := rows.Scan(&c.CodeID, &c.CodeName, &c.Value, &c.Remaining, &c.MaxUser); err != nil {
			return nil, fmt.Errorf("ошибка сканирования кода: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete удаляет код.
func (r *Repository) Delete(ctx context.Context, codeID int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discount_codes WHERE code_id = $1`, codeID)
	if err != nil {
		return fmt.Errorf("ошибка удаления кода: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrCodeNotFound
	}
	return nil
}

// BasketSubtotal считает сумму корзины по актуальным ценам каталога.
func (r *Repository) BasketSubtotal(ctx context.Context, userID int64) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(g.price), 0), COUNT(*)
		FROM basket b JOIN games g ON b.game_id = g.game_id
		WHERE b.uid = $1
	`
	var (
		subtotal decimal.Decimal
		count    int
	)
	if err := r.db.QueryRow(ctx, query, userID).Scan(&subtotal, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("ошибка подсчёта корзины: %w", err)
	}
	return subtotal, count, nil
}
