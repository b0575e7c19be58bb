package service

import (
	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/connectivity"
	"github.com/GlebRadaev/fuelstation/internal/handlers/closing"
	"github.com/GlebRadaev/fuelstation/internal/handlers/preferences"
	"github.com/GlebRadaev/fuelstation/internal/handlers/records"
	"github.com/GlebRadaev/fuelstation/internal/handlers/shifts"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/repo"
	"github.com/GlebRadaev/fuelstation/internal/service/closeflow"
	"github.com/GlebRadaev/fuelstation/internal/service/prefservice"
	"github.com/GlebRadaev/fuelstation/internal/service/recordservice"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
)

type Services struct {
	ShiftService      shifts.Service
	CloseService      closing.Service
	RecordService     records.Service
	PreferenceService preferences.Service

	// Accessor is the shared shift store, also read by the sales sync.
	Accessor *shiftservice.Service
	// Flows must be closed on shutdown.
	Flows *closeflow.Manager
}

func New(cfg *config.Config, repo *repo.Repositories, client *platform.Client, monitor *connectivity.Monitor) *Services {
	accessor := shiftservice.New(client, repo.SnapshotRepo, monitor)
	flows := closeflow.NewManager(accessor, monitor, cfg.Timings)

	return &Services{
		ShiftService:      accessor,
		CloseService:      flows,
		RecordService:     recordservice.New(client),
		PreferenceService: prefservice.New(repo.PreferenceRepo),
		Accessor:          accessor,
		Flows:             flows,
	}
}
