// Package registry реализует хранилище записей о прокате в памяти процесса.
// Реестр принадлежит одному владельцу (циклу меню) и не синхронизирован.
package registry

import (
	"log/slog"
	"time"

	"github.com/magabrotheeeer/movie-rental/internal/models"
)

// Registry хранит записи о прокате по названию фильма.
type Registry struct {
	inner map[string]*models.Rental
	now   func() time.Time
	log   *slog.Logger
}

// Option настраивает Registry.
type Option func(*Registry)

// WithClock задаёт источник текущего времени для Update.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithLogger задаёт логгер для отладочных сообщений об изменениях.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New создает пустой реестр.
func New(opts ...Option) *Registry {
	r := &Registry{
		inner: make(map[string]*models.Rental),
		now:   time.Now,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Now возвращает текущее время по часам реестра.
func (r *Registry) Now() time.Time {
	return r.now()
}

// Add добавляет запись под ключом rental.Name. Существующая запись с тем же
// названием заменяется целиком.
func (r *Registry) Add(rental models.Rental) {
	_, replaced := r.inner[rental.Name]
	r.inner[rental.Name] = &rental
	r.log.Debug("rental stored",
		slog.String("name", rental.Name),
		slog.String("genre", rental.Genre.String()),
		slog.Int("duration", rental.Duration),
		slog.Bool("replaced", replaced))
}

// GetAll возвращает все записи. Порядок не определён.
func (r *Registry) GetAll() []*models.Rental {
	rentals := make([]*models.Rental, 0, len(r.inner))
	for _, rental := range r.inner {
		rentals = append(rentals, rental)
	}
	return rentals
}

// Remove удаляет запись и сообщает, была ли она найдена.
func (r *Registry) Remove(name string) bool {
	if _, ok := r.inner[name]; !ok {
		return false
	}
	delete(r.inner, name)
	r.log.Debug("rental removed", slog.String("name", name))
	return true
}

// Update меняет срок проката и обновляет время оформления.
// Возвращает false, если записи нет.
func (r *Registry) Update(name string, duration int) bool {
	rental, ok := r.inner[name]
	if !ok {
		return false
	}
	rental.Duration = duration
	rental.RentedAt = r.now()
	r.log.Debug("rental updated", slog.String("name", name), slog.Int("duration", duration))
	return true
}

// Len возвращает количество записей.
func (r *Registry) Len() int {
	return len(r.inner)
}
