package update

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id int, req models.DummyCar) (*models.Car, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	newPrice := 120.0

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление цены",
			id:          "2",
			requestBody: models.DummyCar{Price: &newPrice},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 2, mock.AnythingOfType("models.DummyCar")).
					Return(&models.Car{ID: 2, Name: "Toyota Avanza", Price: 120}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":120`,
		},
		{
			name:           "некорректный JSON",
			id:             "2",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid request body"`,
		},
		{
			name:        "автомобиль не найден",
			id:          "7",
			requestBody: models.DummyCar{Name: "Ghost"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, 7, mock.AnythingOfType("models.DummyCar")).
					Return(nil, apperr.NotFound("Car not found!"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Car not found!"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut, "/cars/"+tt.id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

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
