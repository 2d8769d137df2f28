// Package create реализует HTTP-обработчик создания заказа на аренду автомобиля.
//
// Handler принимает JSON-запрос с данными заказа, валидирует их, извлекает
// данные пользователя из контекста, вызывает бизнес-логику создания заказа
// и возвращает созданный заказ в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mitrofanovm/car-rental-backend/internal/http/middlewarectx"
	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на создание заказов.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания заказа,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики заказов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания заказа.
type Service interface {
	Create(ctx context.Context, userUID, fullname string, req models.DummyOrder) (*models.Order, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новый заказ
// @Description Создает заказ на аренду автомобиля для текущего пользователя и снимает доступность автомобиля. Возвращает созданный заказ.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Param request body models.DummyOrder true "Данные нового заказа"
// @Success 200 {object} response.Response "Успешное создание заказа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или автомобиль недоступен"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании заказа"
// @Security BearerAuth
// @Router /orders [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(http.StatusUnauthorized, "unauthorized"))
		return
	}
	fullname, _ := r.Context().Value(middlewarectx.Fullname).(string)

	order, err := h.service.Create(r.Context(), uid, fullname, req)
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	log.Info("order created", slog.Int("id", order.ID))
	render.JSON(w, r, response.Success(http.StatusOK, "Successfully create order data!", order))
}
