// Package prizes — service.go: бизнес-слой розыгрыша и выплат.
package prizes

import (
	"context"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"jackpothub/internal/common"
)

type Service struct {
	repo *Repository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type lockedRand struct {
	mu  *sync.Mutex
	rng *rand.Rand
}

func (l lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (s *Service) ListPrizes(ctx context.Context) ([]Prize, error) {
	return s.repo.ListPrizes(ctx)
}

func (s *Service) WinnersByTier(ctx context.Context, tier int16) ([]Winner, error) {
	return s.repo.WinnersByTier(ctx, tier)
}

// Draw разыгрывает разряд. Четвёртый разряд напрямую не разыгрывается,
// он пересчитывается при розыгрыше первого.
func (s *Service) Draw(ctx context.Context, tier int16, soldOnly bool) (*DrawResult, error) {
	if !DirectTiers[tier] {
		return nil, common.ErrPrizeTierInvalid
	}
	return s.repo.DrawTier(ctx, lockedRand{mu: &s.mu, rng: s.rng}, tier, soldOnly)
}

// DrawAll — полный цикл розыгрыша для планировщика: младшие разряды,
// затем первый (он же перерисовывает четвёртый). Ошибка одного разряда
// не прерывает остальные.
func (s *Service) DrawAll(ctx context.Context, soldOnly bool) []DrawResult {
	results := []DrawResult{}
	for _, tier := range []int16{2, 3, 5, 1} {
		res, err := s.Draw(ctx, tier, soldOnly)
		if err != nil {
			log.WithError(err).WithField("tier", tier).Warn("Разряд не разыгран")
			continue
		}
		results = append(results, *res)
	}
	return results
}

func (s *Service) Claim(ctx context.Context, userID int64, number string) (*ClaimResult, error) {
	return s.repo.Claim(ctx, userID, number)
}

func (s *Service) CheckClaim(ctx context.Context, userID int64, number string) (*ClaimCheck, error) {
	return s.repo.CheckClaim(ctx, userID, number)
}
