package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/affiliate/internal/config"
	"github.com/GlebRadaev/affiliate/internal/handlers"
	"github.com/GlebRadaev/affiliate/internal/pg"
	"github.com/GlebRadaev/affiliate/internal/repo"
	"github.com/GlebRadaev/affiliate/internal/service"
	"github.com/GlebRadaev/affiliate/internal/sweeper"
	"github.com/GlebRadaev/affiliate/pkg/auth"
	"github.com/GlebRadaev/affiliate/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	sweeper *sweeper.Sweeper
	closers []func()

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
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err = logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.cfg = cfg
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	a.srv, err = service.New(cfg, a.repo)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), cfg.WebhookSecret)
	a.sweeper = sweeper.New(a.srv.CommissionService, cfg.SweepInterval)

	if cfg.WebhookSecret == "" {
		zap.L().Warn("WEBHOOK_SECRET is empty, every webhook delivery will be rejected")
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startSweeper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweeper(ctx context.Context) {
	a.sweeper.Start(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-a.sweeper.Done()
	}()
}

// Wait blocks until ctx is done, then drains the background work and releases resources.
// The last error reported by a component is returned.
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

	if a.srv != nil {
		a.srv.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	return appErr
}
