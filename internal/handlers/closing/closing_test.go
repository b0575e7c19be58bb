package closing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/domain"
	"github.com/GlebRadaev/fuelstation/internal/dto"
	"github.com/GlebRadaev/fuelstation/internal/service/closeflow"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/async"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

func NewMock(t *testing.T) (*CloseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestSession(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		method       string
		call         func(w http.ResponseWriter, r *http.Request)
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Open",
			method: http.MethodPost,
			call:   handler.OpenSession,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), userID).Return(closeflow.State{Status: closeflow.StatusLoading}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"loading"`,
		},
		{
			name:   "Open fails",
			method: http.MethodPost,
			call:   handler.OpenSession,
			prepareMock: func() {
				service.EXPECT().Open(gomock.Any(), userID).Return(closeflow.State{}, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
		{
			name:   "Poll",
			method: http.MethodGet,
			call:   handler.GetSession,
			prepareMock: func() {
				service.EXPECT().State(userID).Return(closeflow.State{Status: closeflow.StatusNoShift, RedirectTo: "/shifts"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"redirect_to":"/shifts"`,
		},
		{
			name:   "Poll without session",
			method: http.MethodGet,
			call:   handler.GetSession,
			prepareMock: func() {
				service.EXPECT().State(userID).Return(closeflow.State{}, closeflow.ErrNoFlow)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Close page is not open",
		},
		{
			name:   "Leave",
			method: http.MethodDelete,
			call:   handler.CloseSession,
			prepareMock: func() {
				service.EXPECT().Unmount(userID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Leave without session",
			method: http.MethodDelete,
			call:   handler.CloseSession,
			prepareMock: func() {
				service.EXPECT().Unmount(userID).Return(closeflow.ErrNoFlow)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(tt.method, "/api/shifts/close/session", nil), userID)
			w := httptest.NewRecorder()

			tt.call(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()
	body := `{"payment_methods":[{"method":"cash","amount":"500"},{"method":"card","amount":"300"}]}`

	tests := []struct {
		name         string
		body         string
		err          error
		expectedCode int
	}{
		{name: "Closed", body: body, expectedCode: http.StatusOK},
		{name: "Invalid entries", body: body, err: fmt.Errorf("entry 1: %w", closeflow.ErrNegativeAmount), expectedCode: http.StatusBadRequest},
		{name: "No active shift", body: body, err: shiftservice.ErrNoActiveShift, expectedCode: http.StatusConflict},
		{name: "Rejected", body: body, err: &shiftservice.CloseError{Cause: shiftservice.ErrRejected, Message: "nope"}, expectedCode: http.StatusUnprocessableEntity},
		{name: "Network", body: body, err: &shiftservice.CloseError{Cause: shiftservice.ErrNetwork, Message: "net"}, expectedCode: http.StatusBadGateway},
		{name: "Offline", body: body, err: &shiftservice.CloseError{Cause: shiftservice.ErrOffline, Message: "off"}, expectedCode: http.StatusServiceUnavailable},
		{name: "Timeout", body: body, err: async.ErrTimeout, expectedCode: http.StatusGatewayTimeout},
		{name: "No session", body: body, err: closeflow.ErrNoFlow, expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := closeflow.State{Status: closeflow.StatusSuccess}
			if tt.err != nil {
				state = closeflow.State{Status: closeflow.StatusError, Alert: &closeflow.Alert{Title: "failed"}}
			}
			service.EXPECT().
				Submit(gomock.Any(), userID, gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ uuid.UUID, entries []domain.PaymentMethodEntry) (closeflow.State, error) {
					assert.Equal(t, "employee-token", auth.TokenFromContext(ctx))
					require.Len(t, entries, 2)
					assert.Equal(t, domain.PaymentCash, entries[0].Method)
					assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(500)))
					assert.Equal(t, domain.PaymentCard, entries[1].Method)
					return state, tt.err
				})

			r := withUser(httptest.NewRequest(http.MethodPost, "/api/shifts/close", bytes.NewBufferString(tt.body)), userID)
			r = r.WithContext(auth.WithToken(r.Context(), "employee-token"))
			w := httptest.NewRecorder()
			handler.Submit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNotFound {
				return
			}
			var got closeflow.State
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Equal(t, state.Status, got.Status)
		})
	}

	t.Run("Invalid body", func(t *testing.T) {
		r := withUser(httptest.NewRequest(http.MethodPost, "/api/shifts/close", bytes.NewBufferString("{")), userID)
		w := httptest.NewRecorder()
		handler.Submit(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReconcile(t *testing.T) {
	handler, service := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Preview",
			prepareMock: func() {
				service.EXPECT().Preview(userID, gomock.Any()).Return(domain.Reconciliation{
					Expected: decimal.NewFromInt(800),
					Declared: decimal.NewFromInt(800),
					Cash:     decimal.NewFromInt(500),
					Balanced: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "No shift loaded",
			prepareMock:  func() { service.EXPECT().Preview(userID, gomock.Any()).Return(domain.Reconciliation{}, closeflow.ErrNoShift) },
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid entries",
			prepareMock:  func() { service.EXPECT().Preview(userID, gomock.Any()).Return(domain.Reconciliation{}, closeflow.ErrNoEntries) },
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "No session",
			prepareMock:  func() { service.EXPECT().Preview(userID, gomock.Any()).Return(domain.Reconciliation{}, closeflow.ErrNoFlow) },
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			body := `{"payment_methods":[{"method":"cash","amount":"500"},{"method":"card","amount":"300"}]}`
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/shifts/close/reconcile", bytes.NewBufferString(body)), userID)
			w := httptest.NewRecorder()
			handler.Reconcile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got dto.ReconciliationResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.True(t, got.Balanced)
				assert.True(t, got.Cash.Equal(decimal.NewFromInt(500)))
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	handler, _ := NewMock(t)
	for _, call := range []func(http.ResponseWriter, *http.Request){
		handler.OpenSession, handler.GetSession, handler.CloseSession, handler.Submit, handler.Reconcile,
	} {
		w := httptest.NewRecorder()
		call(w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}
