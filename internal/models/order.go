// Package models содержит доменные структуры проката автомобилей,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Статусы заказа. Заказ создаётся в статусе pending, оплата переводит его
// в paid, отмена — в cancelled. Заказы никогда не удаляются.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Order представляет заказ на аренду автомобиля: связывает одного
// пользователя с одним автомобилем на заданный период времени.
type Order struct {
	ID            int       `json:"id"`                   // Уникальный идентификатор заказа
	OrderNo       *string   `json:"order_no"`             // Номер счёта, присваивается при оплате (nil до оплаты)
	Status        string    `json:"status"`               // Статус заказа: pending, paid или cancelled
	StartTime     time.Time `json:"start_time"`           // Начало аренды
	EndTime       time.Time `json:"end_time"`             // Окончание аренды
	IsDriver      bool      `json:"is_driver"`            // Аренда с водителем
	PaymentMethod string    `json:"payment_method"`       // Способ оплаты
	PromoCode     *string   `json:"promo_code,omitempty"` // Применённый промокод (nil, если не использовался)
	Receipt       *string   `json:"receipt,omitempty"`    // Квитанция об оплате, передаётся клиентом (nil до оплаты)
	Total         float64   `json:"total"`                // Итоговая стоимость аренды
	CarID         int       `json:"car_id"`               // Идентификатор автомобиля
	UserUID       string    `json:"user_uid"`             // Идентификатор пользователя-владельца заказа
	CreatedBy     string    `json:"created_by"`           // Кто создал запись
	UpdatedBy     string    `json:"updated_by"`           // Кто последним изменил запись
	CreatedAt     time.Time `json:"created_at"`           // Дата создания заказа

	Car  *Car  `json:"car,omitempty"`  // Проекция автомобиля (заполняется при чтении)
	User *User `json:"user,omitempty"` // Проекция пользователя (заполняется при чтении)
}

// DummyOrder используется для приёма данных заказа из JSON-запроса
// до их валидации и преобразования в Order. Даты приходят строками RFC3339.
type DummyOrder struct {
	CarID         int    `json:"car_id" validate:"required"`         // Идентификатор автомобиля
	StartTime     string `json:"start_time" validate:"required"`     // Начало аренды, RFC3339
	EndTime       string `json:"end_time" validate:"required"`       // Окончание аренды, RFC3339
	IsDriver      *bool  `json:"is_driver" validate:"required"`      // Аренда с водителем
	Promo         string `json:"promo,omitempty"`                    // Промокод (опционально)
	PaymentMethod string `json:"payment_method" validate:"required"` // Способ оплаты
}

// DummyPayment используется для приёма данных оплаты заказа.
// Receipt — непрозрачные данные квитанции, шлюз оплаты не задействуется.
type DummyPayment struct {
	Receipt string `json:"receipt" validate:"required"`
}
