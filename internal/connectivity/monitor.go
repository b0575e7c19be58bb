// Package connectivity tracks whether the platform is reachable.
package connectivity

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/metrics"
)

type Prober interface {
	Probe(ctx context.Context) error
}

type Monitor struct {
	online   atomic.Bool
	prober   Prober
	interval time.Duration
	recheck  chan struct{}
}

func New(prober Prober, interval time.Duration) *Monitor {
	m := &Monitor{
		prober:   prober,
		interval: interval,
		recheck:  make(chan struct{}, 1),
	}
	m.set(true)
	return m
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Recheck asks the probe loop for an immediate probe. It never blocks.
func (m *Monitor) Recheck() {
	select {
	case m.recheck <- struct{}{}:
	default:
	}
}

func (m *Monitor) Start(ctx context.Context) {
	zap.L().Info("Connectivity monitor started", zap.Duration("interval", m.interval))
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping connectivity monitor")
			return
		case <-ticker.C:
			m.probe(ctx)
		case <-m.recheck:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.prober.Probe(pctx)
	if ctx.Err() != nil {
		return
	}
	online := err == nil
	if was := m.set(online); was != online {
		if online {
			zap.L().Info("Platform reachable again")
		} else {
			zap.L().Warn("Platform unreachable, switching to offline mode", zap.Error(err))
		}
	}
}

func (m *Monitor) set(online bool) (was bool) {
	was = m.online.Swap(online)
	if online {
		metrics.PlatformOnline.Set(1)
	} else {
		metrics.PlatformOnline.Set(0)
	}
	return was
}
