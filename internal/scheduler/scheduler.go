package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"StockGenie/internal/engine"
)

// Scheduler drives scheduled scan passes on a fixed interval.
type Scheduler struct {
	Cron   *cron.Cron
	Engine *engine.Engine
	log    *zap.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(eng *engine.Engine, log *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(),
		Engine: eng,
		log:    log,
	}
}

// Register adds the recurring market-scan job.
func (s *Scheduler) Register(intervalMin int) error {
	spec := fmt.Sprintf("@every %dm", intervalMin)
	if _, err := s.Cron.AddFunc(spec, s.Engine.RunScheduled); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info("scheduler stopped")
}
