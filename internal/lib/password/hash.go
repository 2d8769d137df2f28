// Package password реализует хеширование и проверку паролей через bcrypt.
package password

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Hash принимает пароль пользователя и возвращает его bcrypt-хэш
// для хранения в базе данных.
func Hash(rawPassword string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// IsComplex проверяет сложность пароля: требуется хотя бы одна строчная
// и одна заглавная буква, цифра и специальный символ.
func IsComplex(rawPassword string) bool {
	var lower, upper, digit, special bool
	for _, r := range rawPassword {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}

// Compare сравнивает bcrypt-хэш с введённым паролем.
// Возвращает nil при совпадении, иначе ошибку.
func Compare(hash, rawPassword string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
