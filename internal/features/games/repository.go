// Package games — repository.go выполняет все запросы каталога, корзины
// и библиотеки. Корзина и библиотека — однострочный CRUD; проверки
// «уже в корзине» и «уже куплено» выполняются перед вставкой.
package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const gameColumns = `g.game_id, g.name, g.price, g.release_date, g.description, g.image, g.type_id, t.typename`

func (r *Repository) queryGames(ctx context.Context, query string, args ...any) ([]*Game, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса каталога: %w", err)
	}
	defer rows.Close()

	var list []*Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.GameID, &g.Name, &g.Price, &g.ReleaseDate, &g.Description, &g.Image, &g.TypeID, &g.TypeName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования игры: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// --- Каталог ---

// Create добавляет игру и возвращает её game_id. release_date ставит база.
func (r *Repository) Create(ctx context.Context, name string, price decimal.Decimal, description, image *string, typeID int32) (int64, error) {
	query := `
		INSERT INTO games (name, price, description, image, type_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING game_id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, name, price, description, image, typeID).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка создания игры: %w", err)
	}
	return id, nil
}

// Update переписывает карточку игры; release_date обновляется на NOW().
func (r *Repository) Update(ctx context.Context, gameID int64, name string, price decimal.Decimal, description, image *string, typeID int32) error {
	query := `
		UPDATE games
		SET name = $2, price = $3, release_date = NOW(), description = $4, image = $5, type_id = $6
		WHERE game_id = $1
	`
	tag, err := r.db.Exec(ctx, query, gameID, name, price, description, image, typeID)
	if err != nil {
		return fmt.Errorf("ошибка обновления игры: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrGameNotFound
	}
	return nil
}

// Delete удаляет игру из каталога.
func (r *Repository) Delete(ctx context.Context, gameID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE game_id = $1`, gameID)
	if err != nil {
		return fmt.Errorf("ошибка удаления игры: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrGameNotFound
	}
	return nil
}

// GetByID возвращает карточку игры.
func (r *Repository) GetByID(ctx context.Context, gameID int64) (*Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g JOIN game_types t ON g.type_id = t.type_id
		WHERE g.game_id = $1
	`
	var g Game
	err := r.db.QueryRow(ctx, query, gameID).Scan(
		&g.GameID, &g.Name, &g.Price, &g.ReleaseDate, &g.Description, &g.Image, &g.TypeID, &g.TypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrGameNotFound
		}
		return nil, fmt.Errorf("ошибка чтения игры: %w", err)
	}
	return &g, nil
}

// Latest — 10 последних релизов для витрины.
func (r *Repository) Latest(ctx context.Context) ([]*Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g JOIN game_types t ON g.type_id = t.type_id
		ORDER BY g.release_date DESC
		LIMIT 10
	`
	return r.queryGames(ctx, query)
}

// All — полный каталог для админки, новые сверху.
func (r *Repository) All(ctx context.Context) ([]*Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g JOIN game_types t ON g.type_id = t.type_id
		ORDER BY g.game_id DESC
	`
	return r.queryGames(ctx, query)
}

// Search ищет по подстроке имени и/или типу.
func (r *Repository) Search(ctx context.Context, f SearchFilter) ([]*Game, error) {
	var (
		conds []string
		args  []any
	)
	if f.Term != "" {
		args = append(args, "%"+f.Term+"%")
		conds = append(conds, fmt.Sprintf("g.name ILIKE $%d", len(args)))
	}
	if f.TypeID > 0 {
		args = append(args, f.TypeID)
		conds = append(conds, fmt.Sprintf("g.type_id = $%d", len(args)))
	}

	query := `SELECT ` + gameColumns + ` FROM games g JOIN game_types t ON g.type_id = t.type_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY g.name ASC"

	return r.queryGames(ctx, query, args...)
}

// TopSellers — пять самых продаваемых игр по журналу покупок.
func (r *Repository) TopSellers(ctx context.Context) ([]*TopSeller, error) {
	query := `
		SELECT ` + gameColumns + `, COUNT(pi.game_id) AS total_sold
		FROM purchase_items pi
		JOIN games g ON pi.game_id = g.game_id
		JOIN game_types t ON g.type_id = t.type_id
		GROUP BY g.game_id, t.typename
		HAVING COUNT(pi.game_id) > 0
		ORDER BY total_sold DESC
		LIMIT 5
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса топа продаж: %w", err)
	}
	defer rows.Close()

	var list []*TopSeller
	for rows.Next() {
		var s TopSeller
		if err := rows.Scan(&s.GameID, &s.Name, &s.Price, &s.ReleaseDate, &s.Description, &s.Image, &s.TypeID, &s.TypeName, &s.TotalSold); err != nil {
			return nil, fmt.Errorf("ошибка сканирования топа продаж: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// --- Типы игр ---

func (r *Repository) CreateType(ctx context.Context, typename string) (int32, error) {
	var id int32
	err := r.db.QueryRow(ctx, `INSERT INTO game_types (typename) VALUES ($1) RETURNING type_id`, typename).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания типа: %w", err)
	}
	return id, nil
}

func (r *Repository) ListTypes(ctx context.Context) ([]*GameType, error) {
	rows, err := r.db.Query(ctx, `SELECT type_id, typename FROM game_types ORDER BY typename ASC`)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса типов: %w", err)
	}
	defer rows.Close()

	var list []*GameType
	for rows.Next() {
		var t GameType
		if err := rows.Scan(&t.TypeID, &t.TypeName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования типа: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// --- Корзина ---

// InLibrary проверяет, куплена ли игра пользователем.
func (r *Repository) InLibrary(ctx context.Context, userID, gameID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users_game_library WHERE user_id = $1 AND game_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, gameID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки библиотеки: %w", err)
	}
	return exists, nil
}

// InBasket проверяет, лежит ли игра в корзине.
func (r *Repository) InBasket(ctx context.Context, userID, gameID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM basket WHERE uid = $1 AND game_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, gameID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки корзины: %w", err)
	}
	return exists, nil
}

// AddToBasket кладёт игру в корзину и возвращает bid.
func (r *Repository) AddToBasket(ctx context.Context, userID, gameID int64) (int64, error) {
	var bid int64
	err := r.db.QueryRow(ctx, `INSERT INTO basket (uid, game_id) VALUES ($1, $2) RETURNING bid`, userID, gameID).Scan(&bid)
	if err != nil {
		return 0, fmt.Errorf("ошибка добавления в корзину: %w", err)
	}
	return bid, nil
}

// Basket возвращает содержимое корзины с актуальными ценами каталога.
func (r *Repository) Basket(ctx context.Context, userID int64) ([]*BasketItem, error) {
	query := `
		SELECT b.bid, g.game_id, g.name, g.price
		FROM basket b JOIN games g ON b.game_id = g.game_id
		WHERE b.uid = $1
		ORDER BY b.bid
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса корзины: %w", err)
	}
	defer rows.Close()

	var list []*BasketItem
	for rows.Next() {
		var b BasketItem
		if err := rows.Scan(&b.BID, &b.GameID, &b.Name, &b.Price); err != nil {
			return nil, fmt.Errorf("ошибка сканирования корзины: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// RemoveFromBasket удаляет позицию корзины, принадлежащую пользователю.
func (r *Repository) RemoveFromBasket(ctx context.Context, userID, bid int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM basket WHERE bid = $1 AND uid = $2`, bid, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления из корзины: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrBasketItemNotFound
	}
	return nil
}

// --- Библиотека ---

// Library возвращает купленные игры, свежие сверху.
func (r *Repository) Library(ctx context.Context, userID int64) ([]*LibraryEntry, error) {
	query := `
		SELECT g.game_id, g.name, g.price, g.image, g.release_date, l.purchase_date
		FROM users_game_library l JOIN games g ON l.game_id = g.game_id
		WHERE l.user_id = $1
		ORDER BY l.purchase_date DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса библиотеки: %w", err)
	}
	defer rows.Close()

	var list []*LibraryEntry
	for rows.Next() {
		var e LibraryEntry
		if err := rows.Scan(&e.GameID, &e.Name, &e.Price, &e.Image, &e.ReleaseDate, &e.PurchaseDate); err != nil {
			return nil, fmt.Errorf("ошибка сканирования библиотеки: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
