// Package lottery — repository.go: SQL-слой пула билетов.
package lottery

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

const lottoColumns = "lotto_id, lotto_number, price, status, uid, pid, is_claimed, created_at"

func scanLotto(row pgx.Row) (*Lotto, error) {
	var l Lotto
	err := row.Scan(&l.LottoID, &l.LottoNumber, &l.Price, &l.Status, &l.UID, &l.PID, &l.IsClaimed, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectLottos(rows pgx.Rows) ([]Lotto, error) {
	defer rows.Close()
	list := []Lotto{}
	for rows.Next() {
		l, err := scanLotto(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования билета: %w", err)
		}
		list = append(list, *l)
	}
	return list, rows.Err()
}

// GenerateStaged пересобирает тираж: удаляет прежние staged-билеты и
// вставляет новую партию номеров. Коллизии с уже проданными или
// продающимися номерами гасятся ON CONFLICT DO NOTHING, недобор
// добивается повторными партиями.
func (r *Repository) GenerateStaged(ctx context.Context, rng randSource, price decimal.Decimal, amount int) (*GenerateResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM lottos WHERE status = 'staged'`); err != nil {
		return nil, fmt.Errorf("ошибка очистки тиража: %w", err)
	}

	inserted := 0
	// Каждый проход добирает ровно недостающее; выдохнется только если
	// свободных номеров меньше amount, тогда отдаём сколько есть.
	for attempt := 0; attempt < 20 && inserted < amount; attempt++ {
		batch := RandomNumbers(rng, amount-inserted)
		for _, num := range batch {
			tag, err := tx.Exec(ctx, `
				INSERT INTO lottos (lotto_number, price, status)
				VALUES ($1, $2, 'staged')
				ON CONFLICT (lotto_number) DO NOTHING
			`, num, price)
			if err != nil {
				return nil, fmt.Errorf("ошибка вставки билета: %w", err)
			}
			inserted += int(tag.RowsAffected())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита: %w", err)
	}
	return &GenerateResult{Requested: amount, Inserted: inserted}, nil
}

// PublishStaged выводит весь тираж в продажу.
func (r *Repository) PublishStaged(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, `UPDATE lottos SET status = 'unsold' WHERE status = 'staged'`)
	if err != nil {
		return 0, fmt.Errorf("ошибка запуска тиража: %w", err)
	}
	n := int(tag.RowsAffected())
	if n == 0 {
		return 0, common.ErrNoStagedLottos
	}
	return n, nil
}

// Delist удаляет подготовленный, но не запущенный тираж.
func (r *Repository) Delist(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM lottos WHERE status = 'staged'`)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления тиража: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]Lotto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+lottoColumns+` FROM lottos ORDER BY lotto_number`)
	if err != nil {
		return nil, fmt.Errorf("ошибка списка билетов: %w", err)
	}
	return collectLottos(rows)
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]Lotto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+lottoColumns+` FROM lottos WHERE status = $1 ORDER BY lotto_number`, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка списка билетов по статусу: %w", err)
	}
	return collectLottos(rows)
}

// searchQuery собирает запрос поиска по подстроке номера. Без статуса
// ищем по всему пулу, проданные билеты включительно; фильтр по статусу
// добавляется только по запросу клиента.
func searchQuery(status string) string {
	q := `SELECT ` + lottoColumns + ` FROM lottos WHERE lotto_number LIKE '%' || $1 || '%'`
	if status != "" {
		q += ` AND status = $2`
	}
	return q + ` ORDER BY lotto_number`
}

// Search ищет билеты по подстроке номера, опционально сужая по статусу.
func (r *Repository) Search(ctx context.Context, fragment, status string) ([]Lotto, error) {
	args := []any{fragment}
	if status != "" {
		args = append(args, status)
	}
	rows, err := r.db.Query(ctx, searchQuery(status), args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска билетов: %w", err)
	}
	return collectLottos(rows)
}

func (r *Repository) GetByNumber(ctx context.Context, number string) (*Lotto, error) {
	l, err := scanLotto(r.db.QueryRow(ctx,
		`SELECT `+lottoColumns+` FROM lottos WHERE lotto_number = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrLottoNotFound
		}
		return nil, fmt.Errorf("ошибка чтения билета: %w", err)
	}
	return l, nil
}

// Purchase продаёт билет пользователю: блокировка билета, затем кошелька,
// списание цены и отметка sold. Всё в одной транзакции.
func (r *Repository) Purchase(ctx context.Context, userID int64, number string) (*Lotto, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	l, err := scanLotto(tx.QueryRow(ctx,
		`SELECT `+lottoColumns+` FROM lottos WHERE lotto_number = $1 FOR UPDATE`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrLottoNotFound
		}
		return nil, fmt.Errorf("ошибка блокировки билета: %w", err)
	}
	switch l.Status {
	case StatusSold:
		return nil, common.ErrLottoAlreadySold
	case StatusStaged:
		return nil, common.ErrLottoNotOnSale
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT wallet FROM users WHERE user_id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения кошелька: %w", err)
	}
	if balance.LessThan(l.Price) {
		return nil, common.ErrInsufficientFunds
	}

	if _, err := tx.Exec(ctx, `UPDATE users SET wallet = wallet - $2 WHERE user_id = $1`, userID, l.Price); err != nil {
		return nil, fmt.Errorf("ошибка списания: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO wallet_transactions (user_id, amount, status) VALUES ($1, $2, $3)`,
		userID, l.Price, wallet.DirectionOut,
	); err != nil {
		return nil, fmt.Errorf("ошибка записи транзакции кошелька: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE lottos SET status = 'sold', uid = $2 WHERE lotto_id = $1`,
		l.LottoID, userID,
	); err != nil {
		return nil, fmt.Errorf("ошибка продажи билета: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ошибка коммита: %w", err)
	}

	l.Status = StatusSold
	l.UID = &userID
	return l, nil
}
