package models

import (
	"errors"
	"fmt"
)

// ErrInvalidGenre возвращается, если строка не соответствует ни одному жанру.
var ErrInvalidGenre = errors.New("genre not found")

// Genre — закрытое перечисление жанров фильма.
type Genre int

// Допустимые жанры. Новый жанр нужно добавить и в String, и в ParseGenre.
const (
	Action Genre = iota
	Comedy
	Romance
	Horror
	Drama
)

func (g Genre) String() string {
	switch g {
	case Action:
		return "Action"
	case Comedy:
		return "Comedy"
	case Romance:
		return "Romance"
	case Horror:
		return "Horror"
	case Drama:
		return "Drama"
	}
	return fmt.Sprintf("Genre(%d)", int(g))
}

// ParseGenre разбирает название жанра. Сравнение точное и чувствительно к регистру.
func ParseGenre(s string) (Genre, error) {
	switch s {
	case "Action":
		return Action, nil
	case "Comedy":
		return Comedy, nil
	case "Romance":
		return Romance, nil
	case "Horror":
		return Horror, nil
	case "Drama":
		return Drama, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGenre, s)
}
