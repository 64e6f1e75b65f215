// Package games — service.go содержит бизнес-логику витрины и корзины.
package games

import (
	"context"

	"github.com/shopspring/decimal"

	"jackpothub/internal/common"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// parsePrice превращает строковую цену запроса в decimal и проверяет знак.
func parsePrice(raw string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(raw)
	if err != nil || p.IsNegative() {
		return decimal.Zero, common.ErrInvalidAmount
	}
	return p, nil
}

// CreateGame добавляет игру в каталог.
func (s *Service) CreateGame(ctx context.Context, req UpsertGameRequest) (int64, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, req.Name, price, req.Description, req.Image, req.TypeID)
}

// UpdateGame переписывает карточку игры.
func (s *Service) UpdateGame(ctx context.Context, gameID int64, req UpsertGameRequest) error {
	price, err := parsePrice(req.Price)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, gameID, req.Name, price, req.Description, req.Image, req.TypeID)
}

func (s *Service) DeleteGame(ctx context.Context, gameID int64) error {
	return s.repo.Delete(ctx, gameID)
}

func (s *Service) GameDetails(ctx context.Context, gameID int64) (*Game, error) {
	return s.repo.GetByID(ctx, gameID)
}

func (s *Service) Latest(ctx context.Context) ([]*Game, error) {
	return s.repo.Latest(ctx)
}

func (s *Service) All(ctx context.Context) ([]*Game, error) {
	return s.repo.All(ctx)
}

func (s *Service) Search(ctx context.Context, f SearchFilter) ([]*Game, error) {
	return s.repo.Search(ctx, f)
}

func (s *Service) TopSellers(ctx context.Context) ([]*TopSeller, error) {
	return s.repo.TopSellers(ctx)
}

func (s *Service) CreateType(ctx context.Context, typename string) (int32, error) {
	return s.repo.CreateType(ctx, typename)
}

func (s *Service) ListTypes(ctx context.Context) ([]*GameType, error) {
	return s.repo.ListTypes(ctx)
}

// AddToBasket кладёт игру в корзину.
// Правила инварианта корзины: нельзя положить уже купленное
// и нельзя положить одну игру дважды.
func (s *Service) AddToBasket(ctx context.Context, userID, gameID int64) (int64, error) {
	if _, err := s.repo.GetByID(ctx, gameID); err != nil {
		return 0, err
	}

	owned, err := s.repo.InLibrary(ctx, userID, gameID)
	if err != nil {
		return 0, err
	}
	if owned {
		return 0, common.ErrAlreadyOwned
	}

	inBasket, err := s.repo.InBasket(ctx, userID, gameID)
	if err != nil {
		return 0, err
	}
	if inBasket {
		return 0, common.ErrAlreadyInBasket
	}

	return s.repo.AddToBasket(ctx, userID, gameID)
}

func (s *Service) Basket(ctx context.Context, userID int64) ([]*BasketItem, error) {
	return s.repo.Basket(ctx, userID)
}

func (s *Service) RemoveFromBasket(ctx context.Context, userID, bid int64) error {
	return s.repo.RemoveFromBasket(ctx, userID, bid)
}

func (s *Service) Library(ctx context.Context, userID int64) ([]*LibraryEntry, error) {
	return s.repo.Library(ctx, userID)
}
