package closeflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/clients"
)

type seenHeaders struct {
	mu   sync.Mutex
	auth map[string]string
}

func (s *seenHeaders) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth[r.Method+" "+r.URL.Path] = r.Header.Get("Authorization")
}

func (s *seenHeaders) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth[key]
}

func TestManager_CloseUsesEmployeeToken(t *testing.T) {
	userID := uuid.New()
	shift := openShift(userID)
	seen := &seenHeaders{auth: map[string]string{}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.record(r)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /functions/v1/shifts":
			_ = json.NewEncoder(w).Encode([]domain.Shift{*shift})
		case "POST /functions/v1/shifts/" + shift.ID.String() + "/payment-methods":
			w.WriteHeader(http.StatusNoContent)
		case "POST /functions/v1/shifts/" + shift.ID.String() + "/close":
			closed := shift.Clone()
			closed.Status = domain.ShiftClosed
			closed.ClosingCash = decimal.NewNullDecimal(decimal.NewFromInt(1500))
			_ = json.NewEncoder(w).Encode(closed)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{PlatformAddress: srv.URL, PlatformKey: "anon-key", ServiceKey: "service-key"}
	client := platform.New(cfg, clients.NewHTTPClient(time.Second))

	ctrl := gomock.NewController(t)
	snapshots := shiftservice.NewMockSnapshotRepo(ctrl)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	snapshots.EXPECT().Delete(gomock.Any(), userID).Return(nil).AnyTimes()
	conn := NewMockConnectivity(ctrl)
	conn.EXPECT().Online().Return(true).AnyTimes()

	manager := NewManager(shiftservice.New(client, snapshots, nil), conn, fastTimings())
	t.Cleanup(manager.Close)

	ctx := auth.WithToken(context.Background(), "employee-token")
	_, err := manager.Open(ctx, userID)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		flow, err := manager.Get(userID)
		return err == nil && flow.State().Status == StatusReady
	}, 2*time.Second, 5*time.Millisecond)

	entries := []domain.PaymentMethodEntry{{Method: domain.PaymentCash, Amount: decimal.NewFromInt(1500)}}
	submitted, err := manager.Submit(ctx, userID, entries)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, submitted.Status)

	want := "Bearer employee-token"
	assert.Equal(t, want, seen.get("GET /functions/v1/shifts"))
	assert.Equal(t, want, seen.get("POST /functions/v1/shifts/"+shift.ID.String()+"/payment-methods"))
	assert.Equal(t, want, seen.get("POST /functions/v1/shifts/"+shift.ID.String()+"/close"))
}
