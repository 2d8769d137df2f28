// Package invoice формирует документ счёта для оплаченного заказа.
//
// Документ рендерится из фиксированной проекции полей заказа, автомобиля
// и пользователя. Формат — простой текст, пригодный для выгрузки клиенту.
package invoice

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

const documentTemplate = `CAR RENTAL INVOICE
==================

Invoice No : {{.OrderNo}}
Issued     : {{.CreatedAt.Format "02 Jan 2006"}}
Status     : {{.Status}}

Customer   : {{.User.Fullname}}
Car        : {{.Car.Name}} ({{printf "%.2f" .Car.Price}} / day)
Period     : {{.StartTime.Format "02 Jan 2006 15:04"}} - {{.EndTime.Format "02 Jan 2006 15:04"}}
{{- if .PromoCode}}
Promo      : {{.PromoCode}}
{{- end}}

TOTAL      : {{printf "%.2f" .Total}}
`

var tmpl = template.Must(template.New("invoice").Parse(documentTemplate))

// Render формирует документ счёта по заказу. Заказ должен содержать
// проекции автомобиля и пользователя и присвоенный номер счёта.
func Render(order *models.Order) ([]byte, error) {
	const op = "invoice.Render"
	if order.Car == nil || order.User == nil {
		return nil, fmt.Errorf("%s: order is missing car or user projection", op)
	}
	if order.OrderNo == nil {
		return nil, fmt.Errorf("%s: order has no invoice number", op)
	}

	data := struct {
		*models.Order
		OrderNo   string
		PromoCode string
	}{
		Order:   order,
		OrderNo: *order.OrderNo,
	}
	if order.PromoCode != nil {
		data.PromoCode = *order.PromoCode
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
