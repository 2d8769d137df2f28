package services

import (
	"time"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/rental"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// promos — статическая таблица промокодов. Поиск выполняется по точному
// совпадению названия, записи в базе не хранятся.
var promos = []models.Promo{
	{
		Title:       "NEWUSER",
		Discount:    25,
		ExpiredDate: time.Date(2024, time.November, 25, 0, 0, 0, 0, time.UTC),
	},
	{
		Title:       "SEWASUKASUKA",
		Discount:    15,
		ExpiredDate: time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
	},
}

func findPromo(title string) (*models.Promo, bool) {
	for i := range promos {
		if promos[i].Title == title {
			return &promos[i], true
		}
	}
	return nil, false
}

// applyPromo применяет скидку промокода к сумме. Срок действия проверяется
// явным календарным сравнением с текущим моментом сервиса.
func (s *OrderService) applyPromo(total float64, title string) (float64, error) {
	promo, ok := findPromo(title)
	if !ok || promo.ExpiredDate.Before(s.now()) {
		return 0, apperr.Validation("Promo not found or is not available!")
	}
	return rental.ApplyDiscount(total, promo.Discount), nil
}
