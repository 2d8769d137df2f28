package list

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userUID *string, limit, offset int) ([]*models.Order, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	orders := []*models.Order{
		{ID: 1, UserUID: "uid-1", Status: models.OrderStatusPending},
		{ID: 2, UserUID: "uid-2", Status: models.OrderStatusPaid},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список без фильтра",
			url:  "/orders",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, (*string)(nil), 10, 0).Return(orders, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Successfully get order data!"`,
		},
		{
			name: "фильтр по пользователю передаётся в сервис",
			url:  "/orders?user_uid=uid-1",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, mock.MatchedBy(func(uid *string) bool {
					return uid != nil && *uid == "uid-1"
				}), 10, 0).Return(orders[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_uid":"uid-1"`,
		},
		{
			name: "пагинация из запроса",
			url:  "/orders?limit=5&offset=20",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, (*string)(nil), 5, 20).Return([]*models.Order{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"success"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
