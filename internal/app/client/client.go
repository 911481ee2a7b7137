package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/slog"

	"recordbook/internal/app/client/config"
)

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// App собирает клиент: хранилище, уведомления, контроллер и вывод.
type App struct {
	config     *config.Config
	log        *slog.Logger
	store      RecordStore
	toaster    *Toaster
	controller *Controller
	presenter  *Presenter
}

func New(cfg *config.Config, log *slog.Logger, out io.Writer) *App {
	return newApp(cfg, log, NewHTTPStore(cfg, log), out)
}

func newApp(cfg *config.Config, log *slog.Logger, store RecordStore, out io.Writer) *App {
	toaster := NewToaster()

	return &App{
		config:     cfg,
		log:        log,
		store:      store,
		toaster:    toaster,
		controller: NewController(store, toaster, log),
		presenter:  NewPresenter(out),
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Controller() *Controller {
	return a.controller
}

func (a *App) Toaster() *Toaster {
	return a.toaster
}

func (a *App) Presenter() *Presenter {
	return a.presenter
}

// FlushToasts prints every pending toast. One-shot commands call it before exit.
func (a *App) FlushToasts() {
	a.presenter.RenderToasts(a.toaster.Drain())
}

// CheckConnection проверяет соединение с сервером.
func (a *App) CheckConnection(ctx context.Context) error {
	hc, ok := a.store.(healthChecker)
	if !ok {
		return errors.New("store does not support health checks")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := hc.HealthCheck(ctx); err != nil {
		return fmt.Errorf("server %s unreachable: %w", a.config.ServerAddress, err)
	}
	return nil
}

type appKey struct{}

// NewContext returns ctx carrying a.
func NewContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// FromContext returns the App stored by NewContext.
func FromContext(ctx context.Context) (*App, error) {
	a, ok := ctx.Value(appKey{}).(*App)
	if !ok || a == nil {
		return nil, errors.New("application is not initialized")
	}
	return a, nil
}
