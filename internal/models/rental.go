// Package models содержит доменные структуры прокатной картотеки фильмов.
package models

import (
	"time"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Rental описывает одну запись о прокате фильма.
// Name является ключом записи в реестре.
// Duration не ограничена снизу: ноль и отрицательные значения принимаются как есть.
type Rental struct {
	Name     string    `validate:"required"` // Название фильма
	Genre    Genre     // Жанр
	Duration int       // Срок проката в днях
	RentedAt time.Time // Время оформления или последнего продления (локальное)
}

// Validate проверяет обязательные поля записи.
func (r Rental) Validate() error {
	return validate.Struct(r)
}
