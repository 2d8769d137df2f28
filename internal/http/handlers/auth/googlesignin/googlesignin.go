// Package googlesignin реализует HTTP-обработчик федеративного входа через Google.
//
// Handler принимает JSON-запрос с ID-токеном Google, вызывает бизнес-логику
// федеративного входа и возвращает JWT токен вместе с профилем пользователя.
package googlesignin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// Handler управляет HTTP-запросами на вход через Google.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики федеративного входа
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики федеративного входа.
type Service interface {
	GoogleSignIn(ctx context.Context, idToken string) (string, *models.User, error)
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
// @Summary Войти через Google
// @Description Проверяет ID-токен Google и возвращает JWT токен с профилем пользователя. Существующая локальная учётная запись с той же почтой повышается до федеративной.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyGoogleLogin true "ID-токен Google"
// @Success 200 {object} response.Response "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Токен отклонён"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при входе"
// @Router /auth/googlesignin [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.googlesignin"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGoogleLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, user, err := h.service.GoogleSignIn(r.Context(), req.IDToken)
	if err != nil {
		log.Error("failed to sign in with google", sl.Err(err))
		w.WriteHeader(response.HTTPStatus(err))
		render.JSON(w, r, response.FromError(err))
		return
	}

	log.Info("user signed in with google", slog.String("uid", user.UID))
	render.JSON(w, r, response.Success(http.StatusOK, "Successfully logged in!", map[string]any{
		"token": token,
		"user":  user,
	}))
}
