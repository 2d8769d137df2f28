// Package read реализует HTTP-обработчик получения автомобиля по идентификатору.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на чтение автомобиля.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики автопарка
}

// Service описывает интерфейс бизнес-логики чтения автомобиля.
type Service interface {
	Read(ctx context.Context, id int) (*models.Car, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить автомобиль по ID
// @Description Возвращает данные автомобиля автопарка.
// @Tags Cars
// @Produce  json
// @Param id path int true "ID автомобиля"
// @Success 200 {object} response.Response "Данные автомобиля"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Автомобиль не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /cars/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid car id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid car id"))
		return
	}

	car, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read car", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	render.JSON(w, r, response.Success(http.StatusOK, "Successfully get car data!", car))
}
