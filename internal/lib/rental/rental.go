// Package rental содержит расчёт стоимости аренды и формирование номера счёта.
package rental

import (
	"fmt"
	"time"
)

// Days возвращает длительность аренды в сутках как дробное число.
// Расчёт календарно-независимый: разница времён делится на 24 часа,
// округление не применяется.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// Total считает стоимость аренды: суточная цена, умноженная на число суток.
func Total(dailyPrice float64, start, end time.Time) float64 {
	return dailyPrice * Days(start, end)
}

// ApplyDiscount применяет процентную скидку промокода к сумме.
func ApplyDiscount(total float64, discount int) float64 {
	return total * float64(100-discount) / 100
}

// InvoiceNumber форматирует номер счёта вида INV/{год}/{месяц}/{день}/{номер}.
// Номер — количество заказов, созданных к моменту оплаты.
func InvoiceNumber(now time.Time, count int) string {
	return fmt.Sprintf("INV/%d/%d/%d/%d", now.Year(), int(now.Month()), now.Day(), count)
}
