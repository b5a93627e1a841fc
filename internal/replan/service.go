// Package replan runs the plan recomputation on a fixed interval.
package replan

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Service wraps cron-based replan jobs with an owned lifecycle: the caller
// starts it, schedules jobs, and stops it; Stop waits for running jobs.
type Service struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *Service {
	return &Service{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		logger: logger,
	}
}

// ScheduleInterval registers a periodic job every given duration.
func (s *Service) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("replan: interval must be positive, got %s", interval)
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("replan: schedule interval: %w", err)
	}
	s.logger.Info("replan job scheduled", zap.Duration("interval", interval))
	return id, nil
}

func (s *Service) Start() {
	s.cron.Start()
}

func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
