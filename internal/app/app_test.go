package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/connectivity"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/repo"
	"github.com/GlebRadaev/fuelstation/internal/salessync"
	"github.com/GlebRadaev/fuelstation/internal/service"
	"github.com/GlebRadaev/fuelstation/pkg/clients"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWorkersStopWithContext() {
	cfg := &config.Config{
		PlatformAddress: "http://127.0.0.1:1",
		Timings:         config.Timings{SalesSyncInterval: time.Hour, ConnectivityProbe: time.Hour},
	}
	client := platform.New(cfg, clients.NewHTTPClient(time.Second))
	s.app.monitor = connectivity.New(client, cfg.Timings.ConnectivityProbe)
	s.app.srv = service.New(cfg, &repo.Repositories{}, client, s.app.monitor)
	s.app.sync = salessync.New(cfg, s.app.srv.Accessor)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startWorkers(ctx)
	cancel()

	s.Require().NoError(s.app.Wait(ctx, cancel))
	select {
	case <-s.app.sync.Done():
	case <-time.After(time.Second):
		s.Fail("sales sync still running")
	}
}
