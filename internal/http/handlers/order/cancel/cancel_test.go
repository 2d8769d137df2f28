package cancel

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/http/middlewarectx"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// MockService реализует интерфейс cancel.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Cancel(ctx context.Context, id int, userUID string) (*models.Order, error) {
	args := m.Called(ctx, id, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestCancelHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешная отмена заказа",
			id:      "42",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, 42, "uid-1").
					Return(&models.Order{ID: 42, Status: models.OrderStatusCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"cancelled"`,
		},
		{
			name:           "отсутствует авторизация",
			id:             "42",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"message":"unauthorized"`,
		},
		{
			name:           "некорректный id в url",
			id:             "abc",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid order id"`,
		},
		{
			name:    "чужой заказ",
			id:      "42",
			userUID: "uid-other",
			setupMock: func(m *MockService) {
				m.On("Cancel", mock.Anything, 42, "uid-other").
					Return(nil, apperr.Validation("Order not found or is not available!"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Order not found or is not available!"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tt.id+"/cancel", nil)

			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
