// Package list реализует HTTP-обработчик получения списка автомобилей автопарка.
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

// Handler управляет HTTP-запросами на получение списка автомобилей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики автопарка
}

// Service описывает интерфейс бизнес-логики получения списка автомобилей.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Car, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список автомобилей
// @Description Возвращает автомобили автопарка с пагинацией.
// @Tags Cars
// @Produce  json
// @Param limit query int false "Максимум записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Список автомобилей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /cars [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, offset := 10, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	cars, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list cars", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	render.JSON(w, r, response.Success(http.StatusOK, "Successfully get car data!", cars))
}
