// Package sweeper runs the periodic auto-approval of pending commissions.
package sweeper

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
)

//go:generate mockgen -source=sweeper.go -destination=mock_sweeper.go -package=sweeper

type Approver interface {
	AutoApprove(ctx context.Context, actor domain.Actor) (*commissionservice.BatchResult, error)
}

var actor = domain.Actor{ID: "sweeper", Role: domain.RoleSystem}

type Sweeper struct {
	approver Approver
	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
}

func New(approver Approver, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{approver: approver, interval: interval, done: make(chan struct{})}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("auto-approve sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Done is closed once the loop, including any sweep in progress, has exited.
func (s *Sweeper) Done() <-chan struct{} {
	return s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one auto-approve pass. It reports false when a previous pass is still running.
func (s *Sweeper) Sweep(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		zap.L().Warn("previous sweep still running, skipping")
		return false
	}
	defer s.running.Store(false)

	result, err := s.approver.AutoApprove(ctx, actor)
	if err != nil {
		zap.L().Error("auto-approve sweep failed", zap.Error(err))
		return true
	}
	for _, f := range result.Failed {
		zap.L().Warn("auto-approve skipped commission", zap.String("commissionID", f.ID), zap.String("error", f.Error))
	}
	return true
}
