package closeflow

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/metrics"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

var (
	ErrInvalidUser = errors.New("user id is required")
	ErrNoFlow      = errors.New("close page is not open")
)

// Manager keeps one close flow per employee.
type Manager struct {
	accessor Accessor
	conn     Connectivity
	timings  config.Timings

	mu    sync.Mutex
	flows map[uuid.UUID]*Flow
}

func NewManager(accessor Accessor, conn Connectivity, timings config.Timings) *Manager {
	return &Manager{
		accessor: accessor,
		conn:     conn,
		timings:  timings,
		flows:    make(map[uuid.UUID]*Flow),
	}
}

// Mount returns the live flow of userID or starts a new one. The session
// token of ctx is used for the flow's platform calls.
func (m *Manager) Mount(ctx context.Context, userID uuid.UUID) (*Flow, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUser
	}
	token := auth.TokenFromContext(ctx)

	m.mu.Lock()
	old, ok := m.flows[userID]
	if ok && !old.Terminated() {
		m.mu.Unlock()
		old.SetToken(token)
		return old, nil
	}
	flow := NewFlow(userID, m.accessor, m.conn, m, m.timings)
	flow.SetToken(token)
	m.flows[userID] = flow
	metrics.OpenFlows.Set(float64(len(m.flows)))
	m.mu.Unlock()

	if ok {
		old.Close()
	}
	flow.Start()
	zap.L().Info("close flow mounted", zap.String("user_id", userID.String()))
	return flow, nil
}

func (m *Manager) Get(userID uuid.UUID) (*Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	flow, ok := m.flows[userID]
	if !ok {
		return nil, ErrNoFlow
	}
	return flow, nil
}

func (m *Manager) Unmount(userID uuid.UUID) error {
	m.mu.Lock()
	flow, ok := m.flows[userID]
	delete(m.flows, userID)
	metrics.OpenFlows.Set(float64(len(m.flows)))
	m.mu.Unlock()

	if !ok {
		return ErrNoFlow
	}
	flow.Close()
	zap.L().Info("close flow unmounted", zap.String("user_id", userID.String()))
	return nil
}

// Close unmounts every flow.
func (m *Manager) Close() {
	m.mu.Lock()
	flows := m.flows
	m.flows = make(map[uuid.UUID]*Flow)
	metrics.OpenFlows.Set(0)
	m.mu.Unlock()

	for _, flow := range flows {
		flow.Close()
	}
}

func (m *Manager) Navigate(userID uuid.UUID, to string) {
	zap.L().Info("close flow redirect", zap.String("user_id", userID.String()), zap.String("to", to))
}

// Open mounts the close page of userID and returns its state.
func (m *Manager) Open(ctx context.Context, userID uuid.UUID) (State, error) {
	flow, err := m.Mount(ctx, userID)
	if err != nil {
		return State{}, err
	}
	return flow.State(), nil
}

func (m *Manager) State(userID uuid.UUID) (State, error) {
	flow, err := m.Get(userID)
	if err != nil {
		return State{}, err
	}
	return flow.State(), nil
}

func (m *Manager) Submit(ctx context.Context, userID uuid.UUID, entries []domain.PaymentMethodEntry) (State, error) {
	flow, err := m.Get(userID)
	if err != nil {
		return State{}, err
	}
	return flow.Submit(ctx, entries)
}

func (m *Manager) Preview(userID uuid.UUID, entries []domain.PaymentMethodEntry) (domain.Reconciliation, error) {
	flow, err := m.Get(userID)
	if err != nil {
		return domain.Reconciliation{}, err
	}
	return flow.Preview(entries)
}
