// Package users — repository.go отвечает за все операции с таблицей users в БД.
// Каждая функция выполняет один SQL-запрос и возвращает результат или ошибку.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jackpothub/internal/common"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const userColumns = `user_id, username, email, password, image, wallet, role, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.Image, &u.Wallet, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения пользователя: %w", err)
	}
	return &u, nil
}

// Create добавляет новый аккаунт и возвращает его user_id.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash string, image *string) (int64, error) {
	query := `
		INSERT INTO users (username, email, password, image)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, username, email, passwordHash, image).Scan(&id); err != nil {
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return id, nil
}

// GetByID возвращает аккаунт по user_id; если не найден — common.ErrUserNotFound.
func (r *Repository) GetByID(ctx context.Context, userID int64) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

// GetByUsername ищет аккаунт по имени (без учёта регистра).
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// EmailExists проверяет, зарегистрирован ли email.
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки email: %w", err)
	}
	return exists, nil
}

// UsernameExists проверяет, занято ли имя пользователя.
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))`
	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки имени: %w", err)
	}
	return exists, nil
}

// UpdateProfile обновляет имя, email и аватар аккаунта.
func (r *Repository) UpdateProfile(ctx context.Context, userID int64, username, email string, image *string) error {
	query := `UPDATE users SET username = $2, email = $3, image = $4 WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID, username, email, image)
	if err != nil {
		return fmt.Errorf("ошибка обновления профиля: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

// List возвращает все аккаунты (админский/отладочный просмотр).
func (r *Repository) List(ctx context.Context) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователей: %w", err)
	}
	defer rows.Close()

	var list []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.Username, &u.Email, &u.Password, &u.Image, &u.Wallet, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
