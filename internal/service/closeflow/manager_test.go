package closeflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

func NewMockManager(t *testing.T) (*Manager, *MockAccessor) {
	ctrl := gomock.NewController(t)
	accessor := NewMockAccessor(ctrl)
	conn := NewMockConnectivity(ctrl)
	conn.EXPECT().Online().Return(true).AnyTimes()

	timings := fastTimings()
	timings.AbsentRedirectDelay = 10 * time.Millisecond
	manager := NewManager(accessor, conn, timings)
	t.Cleanup(manager.Close)
	return manager, accessor
}

func TestManager_Mount(t *testing.T) {
	manager, accessor := NewMockManager(t)
	userID := uuid.New()
	accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).
		Return(shiftservice.CheckResult{Shift: openShift(userID)}, nil).Times(1)

	first, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	second, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	assert.Same(t, first, second)

	waitStatus(t, first, StatusReady)
	got, err := manager.Get(userID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = manager.Mount(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestManager_MountReplacesTerminatedFlow(t *testing.T) {
	manager, accessor := NewMockManager(t)
	userID := uuid.New()
	accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).Return(shiftservice.CheckResult{}, nil).Times(2)
	accessor.EXPECT().Current(userID).Return(nil, true).AnyTimes()

	first, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	require.Eventually(t, first.Terminated, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, ShiftListPath, first.State().RedirectTo)

	second, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	require.Eventually(t, second.Terminated, 2*time.Second, 5*time.Millisecond)
}

func TestManager_Unmount(t *testing.T) {
	manager, accessor := NewMockManager(t)
	userID := uuid.New()
	accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).
		Return(shiftservice.CheckResult{Shift: openShift(userID)}, nil)

	flow, err := manager.Mount(context.Background(), userID)
	require.NoError(t, err)
	waitStatus(t, flow, StatusReady)

	require.NoError(t, manager.Unmount(userID))
	assert.True(t, flow.Terminated())

	_, err = manager.Get(userID)
	assert.ErrorIs(t, err, ErrNoFlow)
	assert.ErrorIs(t, manager.Unmount(userID), ErrNoFlow)
}

func TestManager_Close(t *testing.T) {
	manager, accessor := NewMockManager(t)
	users := []uuid.UUID{uuid.New(), uuid.New()}
	flows := make([]*Flow, 0, len(users))
	for _, userID := range users {
		accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).
			Return(shiftservice.CheckResult{Shift: openShift(userID)}, nil)
		flow, err := manager.Mount(context.Background(), userID)
		require.NoError(t, err)
		flows = append(flows, flow)
	}
	for _, flow := range flows {
		waitStatus(t, flow, StatusReady)
	}

	manager.Close()
	for _, flow := range flows {
		assert.True(t, flow.Terminated())
	}
	_, err := manager.Get(users[0])
	assert.ErrorIs(t, err, ErrNoFlow)
}

func TestManager_Session(t *testing.T) {
	manager, accessor := NewMockManager(t)
	userID := uuid.New()
	shift := openShift(userID)
	accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).Return(shiftservice.CheckResult{Shift: shift}, nil)

	_, err := manager.State(userID)
	assert.ErrorIs(t, err, ErrNoFlow)
	_, err = manager.Submit(context.Background(), userID, nil)
	assert.ErrorIs(t, err, ErrNoFlow)
	_, err = manager.Preview(userID, nil)
	assert.ErrorIs(t, err, ErrNoFlow)

	state, err := manager.Open(context.Background(), userID)
	require.NoError(t, err)
	assert.Contains(t, []Status{StatusLoading, StatusReady}, state.Status)

	require.Eventually(t, func() bool {
		state, err := manager.State(userID)
		return err == nil && state.Status == StatusReady
	}, 2*time.Second, 5*time.Millisecond)

	recon, err := manager.Preview(userID, []domain.PaymentMethodEntry{{Method: domain.PaymentCash, Amount: decimal.NewFromInt(2500)}})
	require.NoError(t, err)
	assert.True(t, recon.Balanced)
}

func TestManager_MountForwardsToken(t *testing.T) {
	manager, accessor := NewMockManager(t)
	userID := uuid.New()
	shift := openShift(userID)
	accessor.EXPECT().CheckActiveShift(gomock.Any(), userID, false).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bool) (shiftservice.CheckResult, error) {
			assert.Equal(t, "first-token", auth.TokenFromContext(ctx))
			return shiftservice.CheckResult{Shift: shift.Clone()}, nil
		})
	accessor.EXPECT().EndShift(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ decimal.Decimal, _ []domain.PaymentMethodEntry) (*domain.Shift, error) {
			assert.Equal(t, "second-token", auth.TokenFromContext(ctx))
			return nil, &shiftservice.CloseError{Cause: shiftservice.ErrNetwork, Message: "Network error, check your connection"}
		})

	flow, err := manager.Mount(auth.WithToken(context.Background(), "first-token"), userID)
	require.NoError(t, err)
	waitStatus(t, flow, StatusReady)

	again, err := manager.Mount(auth.WithToken(context.Background(), "second-token"), userID)
	require.NoError(t, err)
	assert.Same(t, flow, again)

	entries := []domain.PaymentMethodEntry{{Method: domain.PaymentCash, Amount: decimal.NewFromInt(1500)}}
	state, err := manager.Submit(context.Background(), userID, entries)
	assert.ErrorIs(t, err, shiftservice.ErrNetwork)
	assert.Equal(t, "Network error", state.Alert.Title)
}
