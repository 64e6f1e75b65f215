// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает автоматический розыгрыш призов по расписанию
// из конфига; пустое расписание отключает планировщик.
package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"jackpothub/internal/config"
	"jackpothub/internal/features/prizes"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron         *cron.Cron
	prizeService *prizes.Service
	enabled      bool
}

// NewScheduler создаёт планировщик розыгрышей. Расписание валидируется
// сразу, чтобы кривой cron-spec ронял процесс на старте, а не молча
// пропускал розыгрыши.
func NewScheduler(cfg *config.Config, prizeService *prizes.Service) (*Scheduler, error) {
	s := &Scheduler{
		cron:         cron.New(),
		prizeService: prizeService,
		enabled:      cfg.DrawCronSpec != "",
	}
	if !s.enabled {
		return s, nil
	}

	_, err := s.cron.AddFunc(cfg.DrawCronSpec, func() {
		log.Info("[CRON] Автоматический розыгрыш призов")
		// По расписанию разыгрываем только среди проданных билетов
		results := s.prizeService.DrawAll(context.Background(), true)
		log.WithField("tiers_drawn", len(results)).Info("[CRON] Розыгрыш завершён")
	})
	if err != nil {
		return nil, fmt.Errorf("некорректное расписание розыгрыша %q: %w", cfg.DrawCronSpec, err)
	}
	return s, nil
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start() {
	if !s.enabled {
		log.Info("Планировщик розыгрышей отключён (DRAW_CRON_SPEC пуст)")
		return
	}
	s.cron.Start()
	log.Info("Планировщик розыгрышей запущен")
}

// Stop останавливает планировщик.
func (s *Scheduler) Stop() {
	if !s.enabled {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик розыгрышей остановлен")
}
