package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "ошибка валидации",
			err:      apperr.Validation("Car not found or is not available!"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Car not found or is not available!",
		},
		{
			name:     "ошибка аутентификации",
			err:      apperr.Unauthenticated("Invalid email or password"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "запрещено",
			err:      apperr.Forbidden("Admin only!"),
			wantCode: http.StatusForbidden,
			wantMsg:  "Admin only!",
		},
		{
			name:     "не найдено",
			err:      apperr.NotFound("Car not found!"),
			wantCode: http.StatusNotFound,
			wantMsg:  "Car not found!",
		},
		{
			name:     "внутренняя ошибка не раскрывает деталей",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := FromError(tt.err)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestSuccess(t *testing.T) {
	resp := Success(http.StatusOK, "Successfully get car data!", map[string]any{"id": 1})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.NotNil(t, resp.Data)
}
