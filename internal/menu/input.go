package menu

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/movie-rental/internal/lib/sl"
	"github.com/magabrotheeeer/movie-rental/internal/models"
)

// readLine читает одну строку без окружающих пробелов.
// Длина строки не ограничена. Пустая строка, конец ввода и ошибка чтения
// дают ok == false; последняя строка без перевода строки читается как обычная.
func (m *Menu) readLine() (string, bool) {
	raw, err := m.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		m.log.Warn("failed to read input", sl.Err(err))
		return "", false
	}
	line := strings.TrimSpace(raw)
	return line, line != ""
}

// readGenre запрашивает жанр, пока ввод не совпадёт с одним из допустимых.
func (m *Menu) readGenre() (models.Genre, bool) {
	for {
		m.print(promptGenre)
		input, ok := m.readLine()
		if !ok {
			return 0, false
		}
		genre, err := models.ParseGenre(input)
		if err != nil {
			m.log.Debug("invalid genre", slog.String("input", input))
			m.println(msgNotGenre)
			continue
		}
		return genre, true
	}
}

// readDuration запрашивает срок в днях, пока ввод не станет целым числом.
func (m *Menu) readDuration() (int, bool) {
	for {
		m.print(promptDuration)
		input, ok := m.readLine()
		if !ok {
			return 0, false
		}
		days, err := strconv.ParseInt(input, 10, 32)
		if err != nil {
			m.log.Debug("invalid duration", slog.String("input", input), sl.Err(err))
			m.println(msgNotNumber)
			continue
		}
		return int(days), true
	}
}
