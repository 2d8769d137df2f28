// Package carrental предоставляет сборку и запуск HTTP-приложения проката автомобилей.
package carrental

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/auth/googlesignin"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/auth/signin"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/auth/signup"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/auth/whoami"
	carlist "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/car/list"
	carread "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/car/read"
	carupdate "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/car/update"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/health"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/cancel"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/create"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/invoice"
	orderlist "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/list"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/myorder"
	orderread "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/read"
	"github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/payment"
	orderupdate "github.com/mitrofanovm/car-rental-backend/internal/http/handlers/order/update"
	"github.com/mitrofanovm/car-rental-backend/internal/http/middlewarectx"
	"github.com/mitrofanovm/car-rental-backend/internal/http/response"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/jwt"
	authservice "github.com/mitrofanovm/car-rental-backend/internal/services/auth"
	carservice "github.com/mitrofanovm/car-rental-backend/internal/services/car"
	orderservice "github.com/mitrofanovm/car-rental-backend/internal/services/order"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, tokens jwt.Maker,
	authService *authservice.AuthService, orderService *orderservice.OrderService, carService *carservice.CarService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
		r.Post("/auth/signin", signin.New(logger, authService).ServeHTTP)
		r.Post("/auth/googlesignin", googlesignin.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/cars", carlist.New(logger, carService).ServeHTTP)
		r.Get("/cars/{id}", carread.New(logger, carService).ServeHTTP)
		r.Get("/orders", orderlist.New(logger, orderService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(tokens, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/auth/whoami", whoami.New(logger, authService).ServeHTTP)
			r.Post("/orders", create.New(logger, orderService).ServeHTTP)
			r.Get("/orders/myorder", myorder.New(logger, orderService).ServeHTTP)
			r.Get("/orders/{id}", orderread.New(logger, orderService).ServeHTTP)
			r.Put("/orders/{id}", orderupdate.New(logger, orderService).ServeHTTP)
			r.Put("/orders/{id}/payment", payment.New(logger, orderService).ServeHTTP)
			r.Get("/orders/{id}/cancel", cancel.New(logger, orderService).ServeHTTP)
			r.Get("/orders/{id}/invoice", invoice.New(logger, orderService).ServeHTTP)

			// Администраторские конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Put("/cars/{id}", carupdate.New(logger, carService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error(http.StatusNotFound, "Sorry, page not found!"))
	})
}
