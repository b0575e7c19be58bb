package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/handlers/closing"
	"github.com/GlebRadaev/fuelstation/internal/handlers/preferences"
	"github.com/GlebRadaev/fuelstation/internal/handlers/records"
	"github.com/GlebRadaev/fuelstation/internal/handlers/shifts"
	"github.com/GlebRadaev/fuelstation/internal/service"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		ShiftService:      shifts.NewMockService(ctrl),
		CloseService:      closing.NewMockService(ctrl),
		RecordService:     records.NewMockService(ctrl),
		PreferenceService: preferences.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.ShiftHandler)
	assert.NotNil(t, h.CloseHandler)
	assert.NotNil(t, h.RecordHandler)
	assert.NotNil(t, h.PreferenceHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShiftHandler := NewMockShiftHandler(ctrl)
	mockCloseHandler := NewMockCloseHandler(ctrl)
	mockRecordHandler := NewMockRecordHandler(ctrl)
	mockPreferenceHandler := NewMockPreferenceHandler(ctrl)

	mockShiftHandler.EXPECT().GetActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockShiftHandler.EXPECT().StartShift(gomock.Any(), gomock.Any()).AnyTimes()
	mockCloseHandler.EXPECT().OpenSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockCloseHandler.EXPECT().GetSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockCloseHandler.EXPECT().CloseSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockCloseHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockCloseHandler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).AnyTimes()
	mockRecordHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockRecordHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockRecordHandler.EXPECT().Get(gomock.Any(), gomock.Any()).
		Do(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tanks", chi.URLParam(r, "entity"))
			assert.Equal(t, "t1", chi.URLParam(r, "id"))
		}).AnyTimes()
	mockRecordHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockRecordHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockPreferenceHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockPreferenceHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		ShiftHandler:      mockShiftHandler,
		CloseHandler:      mockCloseHandler,
		RecordHandler:     mockRecordHandler,
		PreferenceHandler: mockPreferenceHandler,
	}

	jwtService := auth.NewJWTService("test-secret", "")
	token, err := jwtService.GenerateJWT(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router := chi.NewRouter()
	h.InitRoutes(router, jwtService, metrics)

	routes := []struct {
		method string
		url    string
	}{
		{"GET", "/api/shifts/active"},
		{"POST", "/api/shifts"},
		{"POST", "/api/shifts/close/session"},
		{"GET", "/api/shifts/close/session"},
		{"DELETE", "/api/shifts/close/session"},
		{"POST", "/api/shifts/close"},
		{"POST", "/api/shifts/close/reconcile"},
		{"GET", "/api/user/preferences"},
		{"PUT", "/api/user/preferences"},
		{"GET", "/api/records/tanks"},
		{"POST", "/api/records/tanks"},
		{"GET", "/api/records/tanks/t1"},
		{"PUT", "/api/records/tanks/t1"},
		{"DELETE", "/api/records/tanks/t1"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req = httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("GET /metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
