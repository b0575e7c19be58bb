package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type proberFunc func(ctx context.Context) error

func (f proberFunc) Probe(ctx context.Context) error { return f(ctx) }

func TestMonitor_StartsOnline(t *testing.T) {
	m := New(proberFunc(func(context.Context) error { return nil }), time.Hour)
	assert.True(t, m.Online())
}

func TestMonitor_ProbeFlipsState(t *testing.T) {
	defer goleak.VerifyNone(t)

	var failing atomic.Bool
	failing.Store(true)
	m := New(proberFunc(func(context.Context) error {
		if failing.Load() {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	assert.Eventually(t, func() bool { return !m.Online() }, time.Second, 5*time.Millisecond)

	failing.Store(false)
	assert.Eventually(t, m.Online, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestMonitor_Recheck(t *testing.T) {
	defer goleak.VerifyNone(t)

	var probes atomic.Int32
	m := New(proberFunc(func(context.Context) error {
		probes.Add(1)
		return errors.New("unreachable")
	}), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	m.Recheck()
	m.Recheck()
	m.Recheck()

	assert.Eventually(t, func() bool { return !m.Online() }, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, probes.Load(), int32(1))

	cancel()
	time.Sleep(20 * time.Millisecond)
}
