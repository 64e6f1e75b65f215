package checkout

import (
	"context"
)

// Service — бизнес-слой покупки корзины. Вся логика атомарности живёт в
// Repository; сервис только нормализует вход.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Checkout(ctx context.Context, userID int64, codeName string) (*Receipt, error) {
	return s.repo.Checkout(ctx, userID, codeName)
}
