// Package checkout — repository.go выполняет покупку корзины одной
// транзакцией БД. Порядок шагов фиксирован: аккаунт → корзина →
// проверка библиотеки → блокировка кода → расчёт → блокировка
// кошелька → мутации → COMMIT. Любая ошибка на любом шаге
// откатывает всё.
//
// Блокировки берутся в порядке «код, потом кошелёк» (lock-then-read);
// это исключает гонку двух покупок одного аккаунта и двух погашений
// кода у границы исчерпания.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"jackpothub/internal/common"
	"jackpothub/internal/features/wallet"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Checkout покупает всю корзину пользователя, при необходимости погашая
// скидочный код (codeName == "" — без скидки).
func (r *Repository) Checkout(ctx context.Context, userID int64, codeName string) (*Receipt, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	receipt, err := checkoutTx(ctx, tx, userID, codeName)
	if err != nil {
		return nil, err
	}

	// Единственная точка коммита
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита: %w", err)
	}
	return receipt, nil
}

// checkoutTx выполняет все шаги покупки внутри уже открытой транзакции.
func checkoutTx(ctx context.Context, tx pgx.Tx, userID int64, codeName string) (*Receipt, error) {
	// 1. Аккаунт должен существовать даже при пустой корзине
	var userExists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userID).Scan(&userExists)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки аккаунта: %w", err)
	}
	if !userExists {
		return nil, common.ErrUserNotFound
	}

	// 2. Корзина с актуальными ценами каталога
	items, err := loadBasket(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// Пустая корзина — успех без покупок, мутаций в транзакции нет
		return &Receipt{
			Reference:  uuid.New(),
			Subtotal:   decimal.Zero,
			FinalPrice: decimal.Zero,
			Lines:      []Line{},
			BoughtAt:   time.Now(),
		}, nil
	}

	// 3. Ни одна позиция не должна уже лежать в библиотеке
	if err := checkNotOwned(ctx, tx, userID, items); err != nil {
		return nil, err
	}

	// 4. Скидочный код: блокировка строки, бюджет, повторное погашение
	var (
		codeID        *int32
		discountValue = decimal.Zero
	)
	if codeName != "" {
		id, value, err := lockDiscountCode(ctx, tx, userID, codeName)
		if err != nil {
			return nil, err
		}
		codeID = &id
		discountValue = value
	}

	// 5. Итог и пропорциональные доли позиций
	prices := make([]decimal.Decimal, len(items))
	for i, it := range items {
		prices[i] = it.Price
	}
	pricing := ComputePricing(prices, discountValue)

	// 6. Кошелёк под блокировкой
	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT wallet FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения кошелька: %w", err)
	}
	if balance.LessThan(pricing.Final) {
		return nil, common.ErrInsufficientFunds
	}

	// 7. Мутации
	_, err = tx.Exec(ctx, `UPDATE users SET wallet = wallet - $2 WHERE user_id = $1`, userID, pricing.Final)
	if err != nil {
		return nil, fmt.Errorf("ошибка списания: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, status) VALUES ($1, $2, $3)`,
		userID, pricing.Final, wallet.DirectionOut,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи транзакции кошелька: %w", err)
	}

	reference := uuid.New()
	var (
		purchaseID int64
		boughtAt   time.Time
	)
	err = tx.QueryRow(ctx, `
		INSERT INTO purchases (reference, user_id, code_id, subtotal, discount_value, final_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING purchase_id, bought_date
	`, reference, userID, codeID, pricing.Subtotal, discountValue, pricing.Final).Scan(&purchaseID, &boughtAt)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи покупки: %w", err)
	}

	receipt := &Receipt{
		Reference:      reference,
		Subtotal:       pricing.Subtotal,
		DiscountValue:  discountValue,
		FinalPrice:     pricing.Final,
		PurchasedCount: len(items),
		BoughtAt:       boughtAt,
	}
	for i, it := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO purchase_items (purchase_id, game_id, price) VALUES ($1, $2, $3)`,
			purchaseID, it.GameID, pricing.Shares[i],
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка записи позиции покупки: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO users_game_library (user_id, game_id) VALUES ($1, $2)`,
			userID, it.GameID,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка выдачи игры в библиотеку: %w", err)
		}

		receipt.Lines = append(receipt.Lines, Line{GameID: it.GameID, Name: it.Name, Price: pricing.Shares[i]})
	}

	if codeID != nil {
		_, err = tx.Exec(ctx,
			`UPDATE discount_codes SET remaining_user = remaining_user - 1 WHERE code_id = $1`,
			*codeID,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка погашения кода: %w", err)
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM basket WHERE uid = $1`, userID); err != nil {
		return nil, fmt.Errorf("ошибка очистки корзины: %w", err)
	}

	return receipt, nil
}

type basketRow struct {
	GameID int64
	Name   string
	Price  decimal.Decimal
}

func loadBasket(ctx context.Context, tx pgx.Tx, userID int64) ([]basketRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT g.game_id, g.name, g.price
		FROM basket b JOIN games g ON b.game_id = g.game_id
		WHERE b.uid = $1
		ORDER BY b.bid
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения корзины: %w", err)
	}
	defer rows.Close()

	var items []basketRow
	for rows.Next() {
		var it basketRow
		if err := rows.Scan(&it.GameID, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("ошибка сканирования корзины: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func checkNotOwned(ctx context.Context, tx pgx.Tx, userID int64, items []basketRow) error {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.GameID
	}

	var owned bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM users_game_library
			WHERE user_id = $1 AND game_id = ANY($2)
		)
	`, userID, ids).Scan(&owned)
	if err != nil {
		return fmt.Errorf("ошибка проверки библиотеки: %w", err)
	}
	if owned {
		return common.ErrAlreadyOwned
	}
	return nil
}

// lockDiscountCode блокирует строку кода, проверяет бюджет погашений
// и отсутствие прежнего погашения этим аккаунтом (по журналу purchases).
func lockDiscountCode(ctx context.Context, tx pgx.Tx, userID int64, codeName string) (int32, decimal.Decimal, error) {
	var (
		codeID    int32
		value     decimal.Decimal
		remaining int32
	)
	err := tx.QueryRow(ctx, `
		SELECT code_id, discount_value, remaining_user
		FROM discount_codes
		WHERE code_name = $1
		FOR UPDATE
	`, codeName).Scan(&codeID, &value, &remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, decimal.Zero, common.ErrCodeInvalid
		}
		return 0, decimal.Zero, fmt.Errorf("ошибка блокировки кода: %w", err)
	}
	if remaining <= 0 {
		return 0, decimal.Zero, common.ErrCodeInvalid
	}

	var used bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM purchases WHERE user_id = $1 AND code_id = $2)`,
		userID, codeID,
	).Scan(&used)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("ошибка проверки погашений: %w", err)
	}
	if used {
		return 0, decimal.Zero, common.ErrCodeAlreadyUsed
	}

	return codeID, value, nil
}
