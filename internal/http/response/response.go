// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Все конечные точки
// возвращают единый конверт с кодом, статусом, сообщением и данными.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Code дублирует HTTP-статус ответа.
// Поле Status — "success" либо "error".
// Поле Message — человеко-читаемое описание результата.
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"invalid request body"`
}

const (
	// StatusSuccess — значение статуса для успешного ответа.
	StatusSuccess = "success"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "error"
)

// Success возвращает успешный Response с переданным сообщением и данными.
func Success(code int, message string, data any) Response {
	return Response{
		Code:    code,
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(code int, msg string) Response {
	return Response{
		Code:    code,
		Status:  StatusError,
		Message: msg,
	}
}

// FromError формирует Response по классифицированной ошибке сервиса.
// HTTP-статус выбирается по виду ошибки, неклассифицированные ошибки
// отвечают 500 без раскрытия внутреннего текста.
func FromError(err error) Response {
	code := HTTPStatus(err)
	if code == http.StatusInternalServerError {
		return Error(code, "internal server error")
	}
	return Error(code, apperr.Message(err))
}

// HTTPStatus сопоставляет вид ошибки сервиса HTTP-статусу ответа.
func HTTPStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError формирует Response на основе ошибок валидации запроса.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "password":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must contain upper and lower case letters, a digit and a special character", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than zero", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(http.StatusBadRequest, strings.Join(errsMsgs, ", "))
}
