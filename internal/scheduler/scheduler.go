// Package scheduler drives periodic background refreshes of the portfolio.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"foliodash/internal/portfolio"
)

// Refresher is the subset of the portfolio service the scheduler needs.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the refresh task on a cron spec (with seconds field).
type Scheduler struct {
	cron *cron.Cron
	svc  Refresher
	ctx  context.Context
}

// New creates a stopped scheduler bound to svc.
func New(ctx context.Context, svc Refresher) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		svc:  svc,
		ctx:  ctx,
	}
}

// Register adds the refresh job on the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register auto-refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("auto-refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("auto-refresh scheduler stopped")
}

func (s *Scheduler) refreshTask() {
	if err := s.svc.Refresh(s.ctx); err != nil {
		var coded *portfolio.CodedError
		if errors.As(err, &coded) && coded.Code == portfolio.CodeRefreshBusy {
			slog.Debug("auto refresh skipped, one already in flight")
			return
		}
		slog.Error("auto refresh failed", "error", err)
	}
}
