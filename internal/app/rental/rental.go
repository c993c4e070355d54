// Package rental собирает приложение проката: реестр, метрики и меню.
package rental

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/movie-rental/internal/lib/sl"
	"github.com/magabrotheeeer/movie-rental/internal/menu"
	"github.com/magabrotheeeer/movie-rental/internal/metrics"
	"github.com/magabrotheeeer/movie-rental/internal/storage/registry"
)

// App владеет реестром на всё время работы процесса.
type App struct {
	logger   *slog.Logger
	registry *registry.Registry
	metrics  *metrics.Metrics
	menu     *menu.Menu
}

// New создает приложение, читающее команды из in и пишущее ответы в out.
func New(in io.Reader, out io.Writer, logger *slog.Logger) *App {
	logger = logger.With(slog.String("session", uuid.NewString()))

	reg := registry.New(registry.WithLogger(logger))
	m := metrics.New()

	return &App{
		logger:   logger,
		registry: reg,
		metrics:  m,
		menu:     menu.New(reg, m, in, out, logger, menu.WithClock(reg.Now)),
	}
}

// Run запускает цикл меню. Данные реестра теряются после возврата.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("movie rental started")
	err := a.menu.Run(ctx)

	snapshot, gerr := a.metrics.Snapshot()
	if gerr != nil {
		a.logger.Warn("failed to gather metrics", sl.Err(gerr))
	} else {
		a.logger.Debug("session metrics", slog.Any("metrics", snapshot))
	}
	a.logger.Info("movie rental stopped", slog.Int("records", a.registry.Len()))
	return err
}
