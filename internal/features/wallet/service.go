// Package wallet — service.go: валидация сумм и делегирование в репозиторий.
package wallet

import (
	"context"

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

func (s *Service) Balance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return s.repo.GetBalance(ctx, userID)
}

// TopUp пополняет кошелёк на положительную сумму.
func (s *Service) TopUp(ctx context.Context, userID int64, rawAmount string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, common.ErrInvalidAmount
	}

	if err := s.repo.TopUp(ctx, userID, amount); err != nil {
		return decimal.Zero, err
	}

	log.WithFields(log.Fields{"user_id": userID, "amount": amount}).Info("Кошелёк пополнен")
	return amount, nil
}

func (s *Service) History(ctx context.Context, userID int64) ([]*HistoryEntry, error) {
	return s.repo.History(ctx, userID)
}

func (s *Service) WalletHistory(ctx context.Context, userID int64) ([]*Transaction, error) {
	return s.repo.WalletHistory(ctx, userID)
}

func (s *Service) PurchaseHistory(ctx context.Context, userID int64) ([]*PurchaseHistoryEntry, error) {
	return s.repo.PurchaseHistory(ctx, userID)
}

func (s *Service) AdminLedger(ctx context.Context) ([]*AdminLedgerEntry, error) {
	return s.repo.AdminLedger(ctx)
}

// ResetAllWallets — массовое обнуление балансов.
func (s *Service) ResetAllWallets(ctx context.Context) (int64, error) {
	n, err := s.repo.ResetAllWallets(ctx)
	if err == nil {
		log.WithField("accounts", n).Warn("Выполнен административный сброс балансов")
	}
	return n, err
}
