// Package cancel реализует HTTP-обработчик отмены заказа владельцем.
package cancel

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mitrofanovm/car-rental-backend/internal/http/middlewarectx"
	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на отмену заказов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заказов
}

// Service описывает интерфейс бизнес-логики отмены заказа.
type Service interface {
	Cancel(ctx context.Context, id int, userUID string) (*models.Order, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отменить заказ
// @Description Отменяет заказ текущего пользователя и возвращает доступность автомобиля. Чужой заказ отменить нельзя.
// @Tags Orders
// @Produce  json
// @Param id path int true "ID заказа"
// @Success 200 {object} response.Response "Отменённый заказ"
// @Failure 400 {object} response.ErrorResponse "Заказ не найден или принадлежит другому пользователю"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при отмене"
// @Security BearerAuth
// @Router /orders/{id}/cancel [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.cancel"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid order id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid order id"))
		return
	}

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}

	order, err := h.service.Cancel(r.Context(), id, uid)
	if err != nil {
		log.Error("failed to cancel order", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	log.Info("order cancelled", slog.Int("id", id))
	render.JSON(w, r, response.Success(http.StatusOK, "Successfully update order data!", order))
}
