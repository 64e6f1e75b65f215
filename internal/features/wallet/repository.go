// Package wallet — repository.go выполняет все операции с балансами
// и журналом wallet_transactions. Денежные операции выполняются
// в транзакциях БД для целостности данных.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// GetBalance возвращает текущий баланс кошелька.
func (r *Repository) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT wallet FROM users WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, common.ErrUserNotFound
		}
		return decimal.Zero, fmt.Errorf("ошибка получения баланса: %w", err)
	}
	return balance, nil
}

// TopUp пополняет кошелёк. Обновление баланса и запись в журнал
// атомарны: либо оба произойдут, либо ни одного.
func (r *Repository) TopUp(ctx context.Context, userID int64, amount decimal.Decimal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE users SET wallet = wallet + $2 WHERE user_id = $1`, userID, amount)
	if err != nil {
		return fmt.Errorf("ошибка пополнения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrUserNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, status) VALUES ($1, $2, $3)`,
		userID, amount, DirectionIn,
	)
	if err != nil {
		return fmt.Errorf("ошибка записи транзакции: %w", err)
	}

	return tx.Commit(ctx)
}

// History возвращает объединённую историю (пополнения + покупки), новые сверху.
func (r *Repository) History(ctx context.Context, userID int64) ([]*HistoryEntry, error) {
	query := `
		SELECT 'wallet' AS type, amount, wallettransaction_date AS date
		FROM wallet_transactions
		WHERE user_id = $1
		UNION ALL
		SELECT 'purchase' AS type, final_price AS amount, bought_date AS date
		FROM purchases
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса истории: %w", err)
	}
	defer rows.Close()

	var list []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Type, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("ошибка сканирования истории: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// WalletHistory возвращает движения кошелька (вход/выход).
func (r *Repository) WalletHistory(ctx context.Context, userID int64) ([]*Transaction, error) {
	query := `
		SELECT wt_id, user_id, amount, status, wallettransaction_date
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY wallettransaction_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса истории кошелька: %w", err)
	}
	defer rows.Close()

	var list []*Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Status, &t.Date); err != nil {
			return nil, fmt.Errorf("ошибка сканирования транзакции: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// PurchaseHistory возвращает построчную историю купленных игр.
func (r *Repository) PurchaseHistory(ctx context.Context, userID int64) ([]*PurchaseHistoryEntry, error) {
	query := `
		SELECT g.name AS game_name, pi.price, p.bought_date, d.code_name
		FROM purchases p
		JOIN purchase_items pi ON pi.purchase_id = p.purchase_id
		JOIN games g ON pi.game_id = g.game_id
		LEFT JOIN discount_codes d ON p.code_id = d.code_id
		WHERE p.user_id = $1
		ORDER BY p.bought_date DESC, pi.item_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса истории покупок: %w", err)
	}
	defer rows.Close()

	var list []*PurchaseHistoryEntry
	for rows.Next() {
		var e PurchaseHistoryEntry
		if err := rows.Scan(&e.GameName, &e.Price, &e.BoughtDate, &e.DiscountCode); err != nil {
			return nil, fmt.Errorf("ошибка сканирования истории покупок: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// AdminLedger возвращает сводный журнал всех аккаунтов:
// пополнения положительные, покупки с отрицательной суммой.
func (r *Repository) AdminLedger(ctx context.Context) ([]*AdminLedgerEntry, error) {
	query := `
		SELECT 'topup' AS type, user_id, amount, wallettransaction_date AS date, NULL::text AS game_name
		FROM wallet_transactions
		WHERE status = 0
		UNION ALL
		SELECT 'purchase' AS type, p.user_id, pi.price * -1 AS amount, p.bought_date AS date, g.name AS game_name
		FROM purchases p
		JOIN purchase_items pi ON pi.purchase_id = p.purchase_id
		JOIN games g ON pi.game_id = g.game_id
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса сводного журнала: %w", err)
	}
	defer rows.Close()

	var list []*AdminLedgerEntry
	for rows.Next() {
		var e AdminLedgerEntry
		if err := rows.Scan(&e.Type, &e.UserID, &e.Amount, &e.Date, &e.GameName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования сводного журнала: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ResetAllWallets обнуляет балансы всех аккаунтов (административный сброс).
// Журнал при этом не трогаем — он остаётся историческим свидетельством.
func (r *Repository) ResetAllWallets(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET wallet = 0`)
	if err != nil {
		return 0, fmt.Errorf("ошибка сброса балансов: %w", err)
	}
	return tag.RowsAffected(), nil
}
