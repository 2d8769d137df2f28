package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitrofanovm/car-rental-backend/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("uid-1", "ivan@example.com", "Ivan Petrov", "user")
	require.NoError(t, err)

	var gotUID, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID, _ = r.Context().Value(UserUID).(string)
		gotRole, _ = r.Context().Value(Role).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(maker, newNoopLogger())(next)

	t.Run("валидный токен наполняет контекст", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "uid-1", gotUID)
		assert.Equal(t, "user", gotRole)
	})

	t.Run("отсутствие заголовка", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("чужой секрет", func(t *testing.T) {
		other := jwt.NewMaker("other-secret", time.Hour)
		badToken, err := other.GenerateToken("uid-1", "ivan@example.com", "Ivan Petrov", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+badToken)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(maker, newNoopLogger())(AdminOnlyMiddleware(newNoopLogger())(next))

	t.Run("администратор проходит", func(t *testing.T) {
		token, err := maker.GenerateToken("uid-1", "admin@example.com", "Admin", "admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("обычный пользователь получает 403", func(t *testing.T) {
		token, err := maker.GenerateToken("uid-2", "ivan@example.com", "Ivan Petrov", "user")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
