// Package menu реализует интерактивный цикл работы с реестром проката:
// вывод меню, чтение выбора пользователя и сценарии аренды, просмотра,
// удаления и продления.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/movie-rental/internal/lib/sl"
	"github.com/magabrotheeeer/movie-rental/internal/metrics"
	"github.com/magabrotheeeer/movie-rental/internal/models"
)

// Store определяет операции реестра, которые использует меню.
type Store interface {
	// Add добавляет или заменяет запись.
	Add(rental models.Rental)
	// GetAll возвращает все записи.
	GetAll() []*models.Rental
	// Remove удаляет запись по названию.
	Remove(name string) bool
	// Update меняет срок проката.
	Update(name string, duration int) bool
	// Len возвращает количество записей.
	Len() int
}

// Recorder учитывает операции с реестром.
type Recorder interface {
	Observe(operation string, found bool)
	SetRecords(n int)
}

// Тексты протокола ввода-вывода.
const (
	promptInput    = "Input: "
	promptName     = "Movie name: "
	promptGenre    = "Genre (Action, Comedy, Romance, Horror, Drama): "
	promptDuration = "Duration (days): "
	promptRemove   = "Enter movie to remove: "
	promptUpdate   = "Enter movie to update: "

	msgRented      = "Movie rented!"
	msgRemoved     = "Movie removed!"
	msgNotFound    = "Movie not found!"
	msgUpdated     = "Movie Rent Updated!"
	msgNotNumber   = "Please enter a number!"
	msgNotGenre    = "Please enter a genre!"
	msgOutOfRange  = "Please input between 1-5!"
	menuBannerText = "\nMovie Rental\n" +
		"=============\n" +
		"1. Rent Movie\n" +
		"2. View Movie Rent\n" +
		"3. Remove Movie Rental\n" +
		"4. Update Movie Rental\n" +
		"5. Exit\n"
)

// Menu — цикл взаимодействия с пользователем. Единственный владелец Store.
type Menu struct {
	store Store
	rec   Recorder
	in    *bufio.Reader
	out   io.Writer
	log   *slog.Logger
	now   func() time.Time
}

// Option настраивает Menu.
type Option func(*Menu)

// WithClock задаёт источник времени оформления проката.
func WithClock(now func() time.Time) Option {
	return func(m *Menu) {
		m.now = now
	}
}

// New создает меню, читающее строки из in и пишущее в out.
func New(store Store, rec Recorder, in io.Reader, out io.Writer, log *slog.Logger, opts ...Option) *Menu {
	m := &Menu{
		store: store,
		rec:   rec,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run показывает меню и обрабатывает выбор до пункта "5" или пустой строки.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.print(menuBannerText + promptInput)
		choice, ok := m.readLine()
		if !ok {
			m.log.Info("empty input at menu, exiting")
			return nil
		}
		switch choice {
		case "1":
			m.rent()
		case "2":
			m.view()
		case "3":
			m.remove()
		case "4":
			m.update()
		case "5":
			m.log.Info("exit selected")
			return nil
		default:
			m.println(msgOutOfRange)
		}
	}
}

func (m *Menu) rent() {
	m.print(promptName)
	name, ok := m.readLine()
	if !ok {
		return
	}
	genre, ok := m.readGenre()
	if !ok {
		return
	}
	duration, ok := m.readDuration()
	if !ok {
		return
	}

	rental := models.Rental{
		Name:     name,
		Genre:    genre,
		Duration: duration,
		RentedAt: m.now(),
	}
	// Промпты уже отсекают пустое имя; проверка держит контракт модели
	// на случай других источников записей.
	if err := rental.Validate(); err != nil {
		m.log.Warn("rental rejected", sl.Err(err))
		return
	}
	m.store.Add(rental)
	m.rec.Observe(metrics.OpAdd, true)
	m.rec.SetRecords(m.store.Len())
	m.println(msgRented)
}

func (m *Menu) view() {
	rentals := m.store.GetAll()
	m.rec.Observe(metrics.OpList, true)
	for _, r := range rentals {
		m.println(fmt.Sprintf("%+v", *r))
	}
}

func (m *Menu) remove() {
	m.print(promptRemove)
	name, ok := m.readLine()
	if !ok {
		return
	}
	found := m.store.Remove(name)
	m.rec.Observe(metrics.OpRemove, found)
	m.rec.SetRecords(m.store.Len())
	if found {
		m.println(msgRemoved)
	} else {
		m.println(msgNotFound)
	}
}

func (m *Menu) update() {
	m.print(promptUpdate)
	name, ok := m.readLine()
	if !ok {
		return
	}
	duration, ok := m.readDuration()
	if !ok {
		return
	}
	found := m.store.Update(name, duration)
	m.rec.Observe(metrics.OpUpdate, found)
	if found {
		m.println(msgUpdated)
	} else {
		m.println(msgNotFound)
	}
}

func (m *Menu) print(s string) {
	_, _ = io.WriteString(m.out, s)
}

func (m *Menu) println(s string) {
	_, _ = io.WriteString(m.out, s+"\n")
}
