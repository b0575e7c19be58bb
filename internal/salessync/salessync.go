// Package salessync keeps the running sales total of every open shift fresh.
package salessync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/domain"
)

const workers = 10

type Accessor interface {
	OpenShifts() []domain.Shift
	UpdateShiftSalesTotal(ctx context.Context, shiftID uuid.UUID)
}

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type Service struct {
	accessor       Accessor
	workerPool     WorkerPoolI
	updateInterval time.Duration
	inFlight       sync.Map
	done           chan struct{}
}

func New(cfg *config.Config, accessor Accessor) *Service {
	return &Service{
		accessor:       accessor,
		workerPool:     NewWorkerPool(workers),
		updateInterval: cfg.Timings.SalesSyncInterval,
		done:           make(chan struct{}),
	}
}

// Start runs the sync loop until ctx is done. Done is closed once the loop and
// its workers have stopped.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("sales sync started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) Done() <-chan struct{} {
	return s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	defer s.workerPool.Close()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("sales sync stopped")
			return
		case <-ticker.C:
			s.syncShifts(ctx)
		}
	}
}

func (s *Service) syncShifts(ctx context.Context) {
	shifts := s.accessor.OpenShifts()
	if len(shifts) == 0 {
		return
	}

	var g errgroup.Group
	for _, shift := range shifts {
		shiftID := shift.ID
		if _, loaded := s.inFlight.LoadOrStore(shiftID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(shiftID)
				s.accessor.UpdateShiftSalesTotal(ctx, shiftID)
				return nil
			})
			if err != nil {
				s.inFlight.Delete(shiftID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Warn("sales sync round cut short", zap.Error(err))
	}
}
