package models

import "time"

// Promo представляет статическое правило скидки с датой истечения.
// Промокоды не хранятся в базе: таблица фиксированная, поиск по точному
// совпадению названия.
type Promo struct {
	Title       string    // Название промокода
	Discount    int       // Скидка в процентах
	ExpiredDate time.Time // Дата истечения промокода
}
