// Package apperr определяет классификацию ошибок приложения.
//
// Вместо глобальных конструкторов ошибок используется явный тип Error
// с видом (Kind), который обработчики HTTP переводят в статус-код.
// Ошибки передаются обычным возвратом через слои сервисов.
package apperr

import (
	"errors"
	"fmt"
)

// Kind определяет вид ошибки приложения.
type Kind int

const (
	// KindValidation — ошибка, исправимая клиентом (HTTP 400).
	KindValidation Kind = iota + 1
	// KindUnauthenticated — запрос без валидной аутентификации (HTTP 401).
	KindUnauthenticated
	// KindForbidden — недостаточно прав (HTTP 403).
	KindForbidden
	// KindNotFound — ресурс или маршрут не найден (HTTP 404).
	KindNotFound
	// KindInternal — любая неожиданная ошибка (HTTP 500).
	KindInternal
)

// Error — ошибка приложения с видом и человекочитаемым сообщением.
// Обёрнутая причина сохраняется для логов, но не попадает в ответ клиенту.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation возвращает ошибку валидации с заданным сообщением.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Unauthenticated возвращает ошибку аутентификации.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Msg: msg}
}

// Forbidden возвращает ошибку авторизации.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

// NotFound возвращает ошибку отсутствия ресурса.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Internal оборачивает неожиданную ошибку нижележащего слоя.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal server error", Err: err}
}

// KindOf возвращает вид ошибки. Ошибки без явной классификации
// считаются внутренними.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Message возвращает сообщение для клиента. Для неклассифицированных
// ошибок текст причины скрывается.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	return "internal server error"
}
