package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	PlatformCalls.WithLabelValues("shifts", "ok").Inc()
	PlatformOnline.Set(1)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fuelstation_platform_calls_total{function="shifts",outcome="ok"}`)
	assert.Contains(t, w.Body.String(), "fuelstation_platform_online 1")
}

func TestNewRegistry_Twice(t *testing.T) {
	_, err := NewRegistry()
	require.NoError(t, err)
	_, err = NewRegistry()
	assert.NoError(t, err)
}
