package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/connectivity"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/repo"
	"github.com/GlebRadaev/fuelstation/internal/service/prefservice"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
	"github.com/GlebRadaev/fuelstation/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		SnapshotRepo:   shiftservice.NewMockSnapshotRepo(ctrl),
		PreferenceRepo: prefservice.NewMockRepo(ctrl),
	}
	cfg := &config.Config{PlatformAddress: "http://localhost:54321"}
	client := platform.New(cfg, clients.NewMockHTTPClientI(ctrl))
	monitor := connectivity.New(client, time.Second)

	services := New(cfg, repos, client, monitor)

	assert.NotNil(t, services.ShiftService)
	assert.NotNil(t, services.CloseService)
	assert.NotNil(t, services.RecordService)
	assert.NotNil(t, services.PreferenceService)
	assert.Same(t, services.Accessor, services.ShiftService)
	assert.Same(t, services.Flows, services.CloseService)
	services.Flows.Close()
}
