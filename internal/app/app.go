package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelstation/internal/config"
	"github.com/GlebRadaev/fuelstation/internal/connectivity"
	"github.com/GlebRadaev/fuelstation/internal/handlers"
	"github.com/GlebRadaev/fuelstation/internal/metrics"
	"github.com/GlebRadaev/fuelstation/internal/pg"
	"github.com/GlebRadaev/fuelstation/internal/platform"
	"github.com/GlebRadaev/fuelstation/internal/repo"
	"github.com/GlebRadaev/fuelstation/internal/salessync"
	"github.com/GlebRadaev/fuelstation/internal/service"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
	"github.com/GlebRadaev/fuelstation/pkg/clients"
	"github.com/GlebRadaev/fuelstation/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	monitor *connectivity.Monitor
	sync    *salessync.Service
	metrics http.Handler
	jwt     auth.JWTServiceInterface
	pool    *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	registry, err := metrics.NewRegistry()
	if err != nil {
		return fmt.Errorf("can't register metrics: %w", err)
	}

	client := platform.New(cfg, clients.NewHTTPClient(cfg.PlatformTimeout))
	monitor := connectivity.New(client, cfg.Timings.ConnectivityProbe)
	client.SetConnectivity(monitor)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(cfg, a.repo, client, monitor)
	a.api = handlers.New(a.srv)
	a.monitor = monitor
	a.sync = salessync.New(cfg, a.srv.Accessor)
	a.metrics = metrics.Handler(registry)
	a.jwt = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router, a.jwt, a.metrics)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startWorkers runs the connectivity probe and the sales sync until ctx ends.
func (a *Application) startWorkers(ctx context.Context) {
	a.monitor.Start(ctx)
	a.sync.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.sync.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.shutdown()

	return appErr
}

func (a *Application) shutdown() {
	if a.srv != nil && a.srv.Flows != nil {
		a.srv.Flows.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
