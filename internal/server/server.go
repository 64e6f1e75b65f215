// Package server собирает gin-движок и регистрирует все маршруты сервиса.
package server

import (
	"github.com/gin-gonic/gin"

	"jackpothub/internal/config"
	"jackpothub/internal/features/checkout"
	"jackpothub/internal/features/discounts"
	"jackpothub/internal/features/games"
	"jackpothub/internal/features/lottery"
	"jackpothub/internal/features/prizes"
	"jackpothub/internal/features/users"
	"jackpothub/internal/features/wallet"
	"jackpothub/internal/server/middleware"
)

// Handlers — все HTTP-обработчики сервиса, по одному на фичу.
type Handlers struct {
	Users     *users.Handler
	Games     *games.Handler
	Wallet    *wallet.Handler
	Discounts *discounts.Handler
	Checkout  *checkout.Handler
	Lottery   *lottery.Handler
	Prizes    *prizes.Handler
}

// New строит движок с middleware и полной таблицей маршрутов.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.RequestLogger())

	// Аккаунты
	engine.POST("/register", h.Users.Register)
	engine.POST("/login", h.Users.Login)
	engine.GET("/users", h.Users.List)
	engine.GET("/users/:user_id", h.Users.Profile)
	engine.PUT("/users/:user_id", h.Users.UpdateProfile)

	// Каталог
	engine.GET("/games", h.Games.All)
	engine.GET("/games/latest", h.Games.Latest)
	engine.GET("/games/top-sellers", h.Games.TopSellers)
	engine.GET("/games/search", h.Games.Search)
	engine.GET("/games/types", h.Games.ListTypes)
	engine.GET("/games/:game_id", h.Games.Details)

	// Корзина и библиотека
	engine.POST("/users/:user_id/basket/:game_id", h.Games.AddToBasket)
	engine.GET("/users/:user_id/basket", h.Games.Basket)
	engine.DELETE("/users/:user_id/basket/:bid", h.Games.RemoveFromBasket)
	engine.GET("/users/:user_id/library", h.Games.Library)

	// Кошелёк и истории
	engine.GET("/users/:user_id/wallet", h.Wallet.Balance)
	engine.POST("/users/:user_id/wallet/topup", h.Wallet.TopUp)
	engine.GET("/users/:user_id/history", h.Wallet.History)
	engine.GET("/users/:user_id/history/wallet", h.Wallet.WalletHistory)
	engine.GET("/users/:user_id/history/purchases", h.Wallet.PurchaseHistory)

	// Скидки и покупка корзины
	engine.POST("/users/:user_id/basket/discount", h.Discounts.Apply)
	engine.POST("/users/:user_id/purchase-basket", h.Checkout.Purchase)

	// Лотерея
	engine.GET("/lottos", h.Lottery.List)
	engine.GET("/lottos/newLotto", h.Lottery.Generate)
	engine.GET("/lottos/launch", h.Lottery.Launch)
	engine.GET("/lottos/delist", h.Lottery.Delist)
	engine.GET("/lottos/search", h.Lottery.Search)
	engine.GET("/lottos/check", h.Lottery.Check)
	engine.GET("/lottos/status/:status", h.Lottery.ListByStatus)
	engine.POST("/lottos/buy", h.Lottery.Buy)

	// Призы
	engine.GET("/prizes", h.Prizes.List)
	engine.GET("/prizes/randPrize", h.Prizes.Draw)
	engine.GET("/prizes/checkClaim", h.Prizes.CheckClaim)
	engine.GET("/prizes/claimPrize", h.Prizes.Claim)
	engine.GET("/prizes/:prize/lottos", h.Prizes.Winners)

	// Администрирование
	admin := engine.Group("/admin")
	{
		admin.POST("/games", h.Games.CreateGame)
		admin.PUT("/games/:game_id", h.Games.UpdateGame)
		admin.DELETE("/games/:game_id", h.Games.DeleteGame)
		admin.POST("/games/types", h.Games.CreateType)
		admin.POST("/discounts", h.Discounts.Create)
		admin.GET("/discounts", h.Discounts.List)
		admin.DELETE("/discounts/:code_id", h.Discounts.Delete)
		admin.GET("/ledger", h.Wallet.AdminLedger)
		admin.POST("/wallets/reset", h.Wallet.ResetWallets)
	}

	return engine
}
