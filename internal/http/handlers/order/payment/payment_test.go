package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// MockService реализует интерфейс payment.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Payment(ctx context.Context, id int, receipt string) (*models.Order, error) {
	args := m.Called(ctx, id, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestPaymentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	orderNo := "INV/2024/11/5/4"

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная оплата заказа",
			url:         "/orders/42/payment",
			requestBody: models.DummyPayment{Receipt: "receipt-data"},
			setupMock: func(m *MockService) {
				m.On("Payment", mock.Anything, 42, "receipt-data").
					Return(&models.Order{ID: 42, Status: models.OrderStatusPaid, OrderNo: &orderNo}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"order_no":"INV/2024/11/5/4"`,
		},
		{
			name:           "пустая квитанция",
			url:            "/orders/42/payment",
			requestBody:    models.DummyPayment{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Receipt is a required field`,
		},
		{
			name:           "некорректный id в url",
			url:            "/orders/abc/payment",
			requestBody:    models.DummyPayment{Receipt: "receipt-data"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid order id"`,
		},
		{
			name:        "заказ не найден",
			url:         "/orders/42/payment",
			requestBody: models.DummyPayment{Receipt: "receipt-data"},
			setupMock: func(m *MockService) {
				m.On("Payment", mock.Anything, 42, "receipt-data").
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

			body, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			id := strings.TrimSuffix(strings.TrimPrefix(tt.url, "/orders/"), "/payment")
			rctx.URLParams.Add("id", id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
