// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы,
// обработчики и собирает всё в HTTP-сервер и планировщик.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"jackpothub/internal/config"
	"jackpothub/internal/db/postgres"
	"jackpothub/internal/features/checkout"
	"jackpothub/internal/features/discounts"
	"jackpothub/internal/features/games"
	"jackpothub/internal/features/lottery"
	"jackpothub/internal/features/prizes"
	"jackpothub/internal/features/users"
	"jackpothub/internal/features/wallet"
	"jackpothub/internal/jobs"
	"jackpothub/internal/server"
)

// App содержит все компоненты приложения.
type App struct {
	Engine    *gin.Engine
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Создаём схему и сеем таблицу разрядов
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка инициализации схемы: %w", err)
	}

	// === 2. Репозитории ===
	userRepo := users.NewRepository(pool)
	gameRepo := games.NewRepository(pool)
	walletRepo := wallet.NewRepository(pool)
	discountRepo := discounts.NewRepository(pool)
	checkoutRepo := checkout.NewRepository(pool)
	lottoRepo := lottery.NewRepository(pool)
	prizeRepo := prizes.NewRepository(pool)

	// === 3. Сервисы ===
	userService := users.NewService(userRepo, cfg)
	gameService := games.NewService(gameRepo)
	walletService := wallet.NewService(walletRepo)
	discountService := discounts.NewService(discountRepo)
	checkoutService := checkout.NewService(checkoutRepo)
	lottoService := lottery.NewService(lottoRepo, cfg)
	prizeService := prizes.NewService(prizeRepo)

	// === 4. Обработчики ===
	handlers := server.Handlers{
		Users:     users.NewHandler(userService),
		Games:     games.NewHandler(gameService),
		Wallet:    wallet.NewHandler(walletService),
		Discounts: discounts.NewHandler(discountService),
		Checkout:  checkout.NewHandler(checkoutService),
		Lottery:   lottery.NewHandler(lottoService),
		Prizes:    prizes.NewHandler(prizeService),
	}

	// === 5. HTTP-сервер ===
	engine := server.New(cfg, handlers)

	// === 6. Планировщик розыгрышей ===
	scheduler, err := jobs.NewScheduler(cfg, prizeService)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания планировщика: %w", err)
	}

	return &App{
		Engine:    engine,
		Scheduler: scheduler,
		DB:        pool,
	}, nil
}

// Close освобождает ресурсы приложения.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
