package models

// Car представляет автомобиль автопарка. Флаг доступности принадлежит
// исключительно жизненному циклу заказа: создание заказа снимает доступность,
// отмена — возвращает.
type Car struct {
	ID               int     `json:"id"`                 // Уникальный идентификатор автомобиля
	Name             string  `json:"name"`               // Название автомобиля
	Price            float64 `json:"price"`              // Цена аренды за сутки
	IsAvailable      bool    `json:"is_available"`       // Доступен ли автомобиль для бронирования
	IsDriverRequired bool    `json:"is_driver_required"` // Обязательна ли аренда с водителем
}

// DummyCar используется для приёма данных автомобиля из JSON-запроса
// при обновлении. Указатели позволяют отличить отсутствие поля от нулевого значения.
type DummyCar struct {
	Name             string   `json:"name,omitempty"`
	Price            *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	IsAvailable      *bool    `json:"is_available,omitempty"`
	IsDriverRequired *bool    `json:"is_driver_required,omitempty"`
}
