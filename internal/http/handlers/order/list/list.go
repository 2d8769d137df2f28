// Package list реализует HTTP-обработчик получения списка всех заказов.
//
// Конечная точка открытая: свои заказы пользователь получает
// через обработчик myorder.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на получение списка заказов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заказов
}

// Service описывает интерфейс бизнес-логики получения списка заказов.
type Service interface {
	List(ctx context.Context, userUID *string, limit, offset int) ([]*models.Order, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список всех заказов
// @Description Возвращает все заказы с пагинацией.
// @Tags Orders
// @Produce  json
// @Param limit query int false "Максимум записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Param user_uid query string false "Фильтр по идентификатору пользователя"
// @Success 200 {object} response.Response "Список заказов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /orders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, offset := parsePagination(r)

	var filter *string
	if uid := r.URL.Query().Get("user_uid"); uid != "" {
		filter = &uid
	}

	orders, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	render.JSON(w, r, response.Success(http.StatusOK, "Successfully get order data!", orders))
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit, offset = 10, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
