// Package discounts — service.go: бизнес-логика кодов и предпросмотр
// скидки для корзины. Предпросмотр повторяет проверки движка покупок,
// но ничего не изменяет.
package discounts

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"jackpothub/internal/common"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create валидирует и создаёт код.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int32, error) {
	name := strings.TrimSpace(req.CodeName)
	value, err := decimal.NewFromString(req.Value)
	if name == "" || err != nil || !value.IsPositive() || req.MaxUser < 1 {
		return 0, common.ErrInvalidAmount
	}

	id, err := s.repo.Create(ctx, name, value, req.MaxUser)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"code_id": id, "code_name": name, "max_user": req.MaxUser}).Info("Скидочный код создан")
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]*Code, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, codeID int32) error {
	return s.repo.Delete(ctx, codeID)
}

// Preview проверяет код против корзины пользователя и считает итог
// без каких-либо мутаций. Пустая корзина и невалидный/погашенный код —
// те же ошибки, что вернул бы настоящий чекаут.
func (s *Service) Preview(ctx context.Context, userID int64, codeName string) (*Preview, error) {
	subtotal, count, err := s.repo.BasketSubtotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, common.ErrBasketItemNotFound
	}

	code, err := s.repo.GetByName(ctx, codeName)
	if err != nil {
		return nil, err
	}
	if code.Remaining <= 0 {
		return nil, common.ErrCodeInvalid
	}

	used, err := s.repo.UsedByAccount(ctx, userID, code.CodeID)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, common.ErrCodeAlreadyUsed
	}

	final := subtotal.Sub(code.Value)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return &Preview{
		CodeName: code.CodeName,
		Subtotal: subtotal,
		Value:    code.Value,
		Final:    final,
	}, nil
}
