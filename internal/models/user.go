package models

import "time"

// Провайдеры аутентификации пользователя.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User представляет зарегистрированного пользователя системы.
// Для федеративных учётных записей (вход через Google) пароль отсутствует.
type User struct {
	UID          string    `json:"uid"`              // Уникальный идентификатор пользователя
	Email        string    `json:"email"`            // Электронная почта (уникальная)
	PasswordHash *string   `json:"-"`                // Хэш пароля, nil для федеративных учётных записей
	Fullname     string    `json:"fullname"`         // Полное имя пользователя
	Provider     string    `json:"provider"`         // Провайдер аутентификации: local или google
	GoogleID     *string   `json:"-"`                // Идентификатор пользователя у Google (nil для local)
	Avatar       *string   `json:"avatar,omitempty"` // Ссылка на аватар (опционально)
	Role         string    `json:"role"`             // Роль пользователя: admin или user
	CreatedAt    time.Time `json:"created_at"`       // Дата регистрации
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password"`
	Fullname string `json:"fullname" validate:"required"`
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DummyGoogleLogin используется для приёма ID-токена Google из JSON-запроса.
type DummyGoogleLogin struct {
	IDToken string `json:"idToken" validate:"required"`
}
