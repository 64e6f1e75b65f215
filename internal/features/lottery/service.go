// Package lottery — service.go: бизнес-правила пула билетов.
package lottery

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"jackpothub/internal/common"
	"jackpothub/internal/config"
)

type Service struct {
	repo *Repository
	cfg  *config.Config

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(repo *Repository, cfg *config.Config) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// lockedRand — rand.Rand не потокобезопасен, а генерацию могут дёрнуть
// параллельно; сериализуем доступ на время транзакции.
type lockedRand struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

func (l lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// Generate создаёт новый тираж. Нулевая цена заменяется ценой по
// умолчанию, размер партии ограничен сверху конфигом.
func (s *Service) Generate(ctx context.Context, price decimal.Decimal, amount int) (*GenerateResult, error) {
	if price.IsNegative() {
		return nil, common.ErrInvalidAmount
	}
	if price.IsZero() {
		price = s.cfg.LottoDefaultPrice
	}
	if amount <= 0 {
		return nil, common.ErrInvalidAmount
	}
	if amount > s.cfg.LottoMaxGenerate {
		amount = s.cfg.LottoMaxGenerate
	}
	return s.repo.GenerateStaged(ctx, lockedRand{mu: &s.mu, rng: s.rng}, price, amount)
}

func (s *Service) Launch(ctx context.Context) (int, error) {
	return s.repo.PublishStaged(ctx)
}

func (s *Service) Delist(ctx context.Context) (int, error) {
	return s.repo.Delist(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]Lotto, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Lotto, error) {
	return s.repo.ListByStatus(ctx, status)
}

// ValidStatus проверяет имя статуса из пути запроса.
func ValidStatus(status string) bool {
	switch status {
	case StatusStaged, StatusUnsold, StatusSold:
		return true
	}
	return false
}

func (s *Service) Search(ctx context.Context, fragment, status string) ([]Lotto, error) {
	return s.repo.Search(ctx, fragment, status)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*Lotto, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *Service) Buy(ctx context.Context, userID int64, number string) (*Lotto, error) {
	return s.repo.Purchase(ctx, userID, number)
}
