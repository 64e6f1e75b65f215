// Package postgres — schema.go разворачивает схему базы при старте.
// Таблицы создаются через CREATE TABLE IF NOT EXISTS, поэтому повторный
// запуск безопасен. В продакшене рекомендуется golang-migrate, здесь
// миграции держим в коде, чтобы упростить сборку.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Таблицы магазина и лотереи. Денежные колонки — NUMERIC(12,2),
// балансы защищены CHECK (wallet >= 0) как последний рубеж после
// блокировок FOR UPDATE в движке покупок.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    BIGSERIAL PRIMARY KEY,
		username   VARCHAR(255) NOT NULL UNIQUE,
		email      VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL,
		image      TEXT,
		wallet     NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (wallet >= 0),
		role       VARCHAR(16) NOT NULL DEFAULT 'member' CHECK (role IN ('member','admin')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS game_types (
		type_id  SERIAL PRIMARY KEY,
		typename VARCHAR(255) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		game_id      BIGSERIAL PRIMARY KEY,
		name         VARCHAR(255) NOT NULL,
		price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		release_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		description  TEXT,
		image        TEXT,
		type_id      INTEGER NOT NULL REFERENCES game_types(type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS basket (
		bid      BIGSERIAL PRIMARY KEY,
		uid      BIGINT NOT NULL REFERENCES users(user_id),
		game_id  BIGINT NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (uid, game_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users_game_library (
		id            BIGSERIAL PRIMARY KEY,
		user_id       BIGINT NOT NULL REFERENCES users(user_id),
		game_id       BIGINT NOT NULL REFERENCES games(game_id),
		purchase_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, game_id)
	)`,
	`CREATE TABLE IF NOT EXISTS discount_codes (
		code_id        SERIAL PRIMARY KEY,
		code_name      VARCHAR(64) NOT NULL UNIQUE,
		discount_value NUMERIC(12,2) NOT NULL CHECK (discount_value > 0),
		remaining_user INTEGER NOT NULL CHECK (remaining_user >= 0),
		max_user       INTEGER NOT NULL CHECK (max_user >= 1)
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		purchase_id    BIGSERIAL PRIMARY KEY,
		reference      UUID NOT NULL UNIQUE,
		user_id        BIGINT NOT NULL REFERENCES users(user_id),
		code_id        INTEGER REFERENCES discount_codes(code_id),
		subtotal       NUMERIC(12,2) NOT NULL,
		discount_value NUMERIC(12,2) NOT NULL DEFAULT 0,
		final_price    NUMERIC(12,2) NOT NULL,
		bought_date    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_items (
		item_id     BIGSERIAL PRIMARY KEY,
		purchase_id BIGINT NOT NULL REFERENCES purchases(purchase_id) ON DELETE CASCADE,
		game_id     BIGINT NOT NULL REFERENCES games(game_id),
		price       NUMERIC(12,2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		wt_id                  BIGSERIAL PRIMARY KEY,
		user_id                BIGINT NOT NULL REFERENCES users(user_id),
		amount                 NUMERIC(12,2) NOT NULL,
		status                 SMALLINT NOT NULL CHECK (status IN (0, 1)),
		wallettransaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS lottos (
		lotto_id     BIGSERIAL PRIMARY KEY,
		lotto_number VARCHAR(6) NOT NULL UNIQUE,
		price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		status       VARCHAR(8) NOT NULL DEFAULT 'staged' CHECK (status IN ('staged','unsold','sold')),
		uid          BIGINT REFERENCES users(user_id),
		pid          SMALLINT NOT NULL DEFAULT 0 CHECK (pid BETWEEN 0 AND 5),
		is_claimed   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS prizes (
		prize_tier   SMALLINT PRIMARY KEY CHECK (prize_tier BETWEEN 1 AND 5),
		lotto_number VARCHAR(6) NOT NULL DEFAULT '',
		prize_money  NUMERIC(12,2) NOT NULL
	)`,
	// Одна строка на разряд; суммы можно менять через SQL, сервис их только читает
	`INSERT INTO prizes (prize_tier, lotto_number, prize_money) VALUES
		(1, '', 6000000),
		(2, '', 200000),
		(3, '', 80000),
		(4, '', 4000),
		(5, '', 2000)
	ON CONFLICT (prize_tier) DO NOTHING`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_tx_user ON wallet_transactions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_user_code ON purchases(user_id, code_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lottos_pid ON lottos(pid)`,
}

// EnsureSchema создаёт недостающие таблицы и сид-строки призов.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("не удалось получить соединение: %w", err)
	}
	defer conn.Release()

	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ошибка применения схемы: %w", err)
		}
	}

	log.Info("Схема базы данных готова")
	return nil
}
