// Package whoami реализует HTTP-обработчик получения профиля текущего пользователя.
package whoami

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mitrofanovm/car-rental-backend/internal/http/middlewarectx"
	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на получение профиля текущего пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пользователей
}

// Service описывает интерфейс получения профиля пользователя.
type Service interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает профиль пользователя из JWT токена.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Security BearerAuth
// @Router /auth/whoami [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.whoami"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	user, err := h.service.GetUser(r.Context(), uid)
	if err != nil {
		log.Error("failed to get user", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	render.JSON(w, r, response.Success(http.StatusOK, "Successfully get user data!", user))
}
