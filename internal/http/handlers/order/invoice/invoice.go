// Package invoice реализует HTTP-обработчик выгрузки счёта по оплаченному заказу.
//
// В отличие от остальных обработчиков, успешный ответ — не JSON-конверт,
// а текстовый документ счёта.
package invoice

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
)

// Handler управляет HTTP-запросами на выгрузку счёта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики заказов
}

// Service описывает интерфейс бизнес-логики формирования счёта.
type Service interface {
	Invoice(ctx context.Context, id int) ([]byte, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Выгрузить счёт
// @Description Возвращает документ счёта для оплаченного заказа. Неоплаченный заказ отклоняется.
// @Tags Orders
// @Produce  plain
// @Param id path int true "ID заказа"
// @Success 200 {string} string "Документ счёта"
// @Failure 400 {object} response.ErrorResponse "Заказ не оплачен или не найден"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при формировании счёта"
// @Security BearerAuth
// @Router /orders/{id}/invoice [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.invoice"
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

	doc, err := h.service.Invoice(r.Context(), id)
	if err != nil {
		log.Error("failed to render invoice", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+strconv.Itoa(id)+".txt")
	if _, err := w.Write(doc); err != nil {
		log.Error("failed to write invoice", sl.Err(err))
	}
}
