// Package jwt реализует выпуск и разбор JWT токенов с пользовательскими
// claim полями для аутентификации запросов.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает данные пользователя, зашитые в JWT.
type CustomClaims struct {
	UserUID              string `json:"uid"`      // Идентификатор пользователя
	Email                string `json:"email"`    // Электронная почта
	Fullname             string `json:"fullname"` // Полное имя
	Role                 string `json:"role"`     // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для выпуска и разбора JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя.
	GenerateToken(uid, email, fullname, role string) (string, error)
	// ParseToken проверяет подпись токена и возвращает его claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker на симметричном секретном ключе (HS256).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов
	tokenTTL  time.Duration // Время жизни токена
}

// NewMaker создаёт MakerImpl с заданным секретом и временем жизни токена.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
