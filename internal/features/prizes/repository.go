// Package prizes — repository.go: SQL-слой розыгрыша и выплат.
package prizes

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repository) ListPrizes(ctx context.Context) ([]Prize, error) {
	rows, err := r.db.Query(ctx,
		`SELECT prize_tier, lotto_number, prize_money FROM prizes ORDER BY prize_tier`)
	if err != nil {
		return nil, fmt.Errorf("ошибка списка разрядов: %w", err)
	}
	defer rows.Close()

	list := []Prize{}
	for rows.Next() {
		var p Prize
		if err := rows.Scan(&p.PrizeTier, &p.LottoNumber, &p.PrizeMoney); err != nil {
			return nil, fmt.Errorf("ошибка сканирования разряда: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *Repository) WinnersByTier(ctx context.Context, tier int16) ([]Winner, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lotto_id, lotto_number, status, uid, is_claimed
		FROM lottos
		WHERE pid = $1
		ORDER BY lotto_number
	`, tier)
	if err != nil {
		return nil, fmt.Errorf("ошибка списка победителей: %w", err)
	}
	defer rows.Close()

	list := []Winner{}
	for rows.Next() {
		var w Winner
		if err := rows.Scan(&w.LottoID, &w.LottoNumber, &w.Status, &w.UID, &w.IsClaimed); err != nil {
			return nil, fmt.Errorf("ошибка сканирования победителя: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// poolPredicate — из какого множества билетов разыгрываем: только
// проданные либо весь выведенный в продажу пул.
func poolPredicate(soldOnly bool) string {
	if soldOnly {
		return `status = 'sold'`
	}
	return `status IN ('unsold', 'sold')`
}

// DrawTier разыгрывает разряд tier. Прежние победители разряда
// сбрасываются в той же транзакции, так что повторный розыгрыш
// безопасен. Розыгрыш первого разряда попутно перерисовывает четвёртый.
func (r *Repository) DrawTier(ctx context.Context, rng randSource, tier int16, soldOnly bool) (*DrawResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var res *DrawResult
	if tier == 5 {
		res, err = drawTier5(ctx, tx, rng, soldOnly)
	} else {
		res, err = drawDirect(ctx, tx, rng, tier, soldOnly)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита: %w", err)
	}
	return res, nil
}

// drawDirect разыгрывает разряды 1-3 случайным билетом из пула.
func drawDirect(ctx context.Context, tx pgx.Tx, rng randSource, tier int16, soldOnly bool) (*DrawResult, error) {
	if _, err := tx.Exec(ctx, `UPDATE lottos SET pid = 0 WHERE pid = $1`, tier); err != nil {
		return nil, fmt.Errorf("ошибка сброса разряда %d: %w", tier, err)
	}
	if tier == 1 {
		// Четвёртый разряд производен от первого: его тоже сбрасываем
		if _, err := tx.Exec(ctx, `UPDATE lottos SET pid = 0 WHERE pid = 4`); err != nil {
			return nil, fmt.Errorf("ошибка сброса четвёртого разряда: %w", err)
		}
	}

	type candidate struct {
		id     int64
		number string
		uid    *int64
	}
	rows, err := tx.Query(ctx,
		`SELECT lotto_id, lotto_number, uid FROM lottos WHERE pid = 0 AND `+poolPredicate(soldOnly))
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки кандидатов: %w", err)
	}
	var pool []candidate
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.id, &c.number, &c.uid); err != nil {
			rows.Close()
			return nil, fmt.Errorf("ошибка сканирования кандидата: %w", err)
		}
		pool = append(pool, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, common.ErrNoLottosAvailable
	}

	win := pool[rng.Intn(len(pool))]
	if _, err := tx.Exec(ctx, `UPDATE lottos SET pid = $2 WHERE lotto_id = $1`, win.id, tier); err != nil {
		return nil, fmt.Errorf("ошибка отметки победителя: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE prizes SET lotto_number = $2 WHERE prize_tier = $1`, tier, win.number); err != nil {
		return nil, fmt.Errorf("ошибка записи номера разряда: %w", err)
	}

	res := &DrawResult{PrizeTier: tier, LottoNumber: win.number, WinnerUID: win.uid, Winners: 1}

	if tier == 1 {
		suffix, err := Tier4Suffix(win.number)
		if err != nil {
			return nil, err
		}
		// Хвостовые совпадения выигрывают четвёртый разряд; билеты,
		// уже взявшие разряды 1-4, не понижаются и не дублируются
		tag, err := tx.Exec(ctx, `
			UPDATE lottos SET pid = 4
			WHERE lotto_number LIKE '%' || $1
			  AND pid NOT BETWEEN 1 AND 4
			  AND `+poolPredicate(soldOnly),
			suffix)
		if err != nil {
			return nil, fmt.Errorf("ошибка розыгрыша четвёртого разряда: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE prizes SET lotto_number = $1 WHERE prize_tier = 4`, suffix); err != nil {
			return nil, fmt.Errorf("ошибка записи суффикса четвёртого разряда: %w", err)
		}
		res.Tier4Suffix = suffix
		res.Tier4Count = int(tag.RowsAffected())
	}

	return res, nil
}

// drawTier5 разыгрывает пятый разряд двузначным суффиксом.
func drawTier5(ctx context.Context, tx pgx.Tx, rng randSource, soldOnly bool) (*DrawResult, error) {
	if _, err := tx.Exec(ctx, `UPDATE lottos SET pid = 0 WHERE pid = 5`); err != nil {
		return nil, fmt.Errorf("ошибка сброса пятого разряда: %w", err)
	}

	suffix := RandomTier5Suffix(rng)
	tag, err := tx.Exec(ctx, `
		UPDATE lottos SET pid = 5
		WHERE lotto_number LIKE '%' || $1
		  AND pid NOT BETWEEN 1 AND 4
		  AND `+poolPredicate(soldOnly),
		suffix)
	if err != nil {
		return nil, fmt.Errorf("ошибка розыгрыша пятого разряда: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE prizes SET lotto_number = $1 WHERE prize_tier = 5`, suffix); err != nil {
		return nil, fmt.Errorf("ошибка записи суффикса пятого разряда: %w", err)
	}

	return &DrawResult{
		PrizeTier:   5,
		LottoNumber: suffix,
		Winners:     int(tag.RowsAffected()),
	}, nil
}

// Claim выплачивает выигрыш владельцу билета и помечает билет
// погашенным. Повторная выплата исключена блокировкой строки билета.
func (r *Repository) Claim(ctx context.Context, userID int64, number string) (*ClaimResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		lottoID   int64
		pid       int16
		uid       *int64
		isClaimed bool
	)
	err = tx.QueryRow(ctx,
		`SELECT lotto_id, pid, uid, is_claimed FROM lottos WHERE lotto_number = $1 FOR UPDATE`,
		number,
	).Scan(&lottoID, &pid, &uid, &isClaimed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrLottoNotFound
		}
		return nil, fmt.Errorf("ошибка блокировки билета: %w", err)
	}

	if err := CanClaim(pid, uid, isClaimed, userID); err != nil {
		return nil, err
	}

	var money decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT prize_money FROM prizes WHERE prize_tier = $1`, pid).Scan(&money)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения суммы разряда: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE lottos SET is_claimed = TRUE WHERE lotto_id = $1`, lottoID); err != nil {
		return nil, fmt.Errorf("ошибка отметки выплаты: %w", err)
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx,
		`UPDATE users SET wallet = wallet + $2 WHERE user_id = $1 RETURNING wallet`,
		userID, money,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка зачисления выигрыша: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, status) VALUES ($1, $2, $3)`,
		userID, money, wallet.DirectionIn,
	); err != nil {
		return nil, fmt.Errorf("ошибка записи транзакции кошелька: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита: %w", err)
	}

	return &ClaimResult{
		LottoNumber: number,
		PrizeTier:   pid,
		PrizeMoney:  money,
		NewBalance:  balance,
	}, nil
}

// CheckClaim отвечает, выигрышен ли билет, без каких-либо мутаций.
func (r *Repository) CheckClaim(ctx context.Context, userID int64, number string) (*ClaimCheck, error) {
	var (
		pid       int16
		uid       *int64
		isClaimed bool
	)
	err := r.db.QueryRow(ctx,
		`SELECT pid, uid, is_claimed FROM lottos WHERE lotto_number = $1`, number,
	).Scan(&pid, &uid, &isClaimed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrLottoNotFound
		}
		return nil, fmt.Errorf("ошибка чтения билета: %w", err)
	}

	check := &ClaimCheck{
		LottoNumber: number,
		PrizeTier:   pid,
		IsClaimed:   isClaimed,
		CanClaim:    CanClaim(pid, uid, isClaimed, userID) == nil,
	}
	if pid > 0 {
		err = r.db.QueryRow(ctx,
			`SELECT prize_money FROM prizes WHERE prize_tier = $1`, pid).Scan(&check.PrizeMoney)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения суммы разряда: %w", err)
		}
	}
	return check, nil
}
