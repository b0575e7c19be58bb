package repo

import (
	"github.com/GlebRadaev/fuelstation/internal/pg"
	preferencerepo "github.com/GlebRadaev/fuelstation/internal/repo/preference-repo"
	snapshotrepo "github.com/GlebRadaev/fuelstation/internal/repo/snapshot-repo"
	"github.com/GlebRadaev/fuelstation/internal/service/prefservice"
	"github.com/GlebRadaev/fuelstation/internal/service/shiftservice"
)

type Repositories struct {
	SnapshotRepo   shiftservice.SnapshotRepo
	PreferenceRepo prefservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		SnapshotRepo:   snapshotrepo.New(conn, txManager),
		PreferenceRepo: preferencerepo.New(conn, txManager),
	}
}
