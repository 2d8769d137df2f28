// Package services содержит бизнес-логику жизненного цикла заказа:
// создание, изменение, оплату, отмену и выгрузку счёта.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/invoice"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/rental"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// OrderRepository определяет методы для работы с заказами в хранилище.
type OrderRepository interface {
	// CreateOrder создаёт заказ и снимает доступность автомобиля в одной транзакции.
	CreateOrder(ctx context.Context, order models.Order) (int, error)
	// GetOrder возвращает заказ с проекциями автомобиля и пользователя.
	GetOrder(ctx context.Context, id int) (*models.Order, error)
	// UpdateOrder обновляет параметры заказа.
	UpdateOrder(ctx context.Context, order models.Order, id int) (int, error)
	// MarkOrderPaid переводит заказ в статус paid.
	MarkOrderPaid(ctx context.Context, id int, orderNo, receipt string) (int, error)
	// CancelOrder возвращает доступность автомобиля и отменяет заказ в одной транзакции.
	CancelOrder(ctx context.Context, orderID, carID int) error
	// ListOrders возвращает список заказов с опциональным фильтром по пользователю.
	ListOrders(ctx context.Context, userUID *string, limit, offset int) ([]*models.Order, error)
	// CountOrders подсчитывает заказы, созданные не позднее заданного момента.
	CountOrders(ctx context.Context, until time.Time) (int, error)
}

// CarRepository определяет чтение автомобилей, необходимое заказам.
type CarRepository interface {
	GetCar(ctx context.Context, id int) (*models.Car, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// OrderService реализует бизнес-логику заказов, включая кеширование.
type OrderService struct {
	repo  OrderRepository
	cars  CarRepository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// NewOrderService создает новый экземпляр OrderService.
func NewOrderService(repo OrderRepository, cars CarRepository, cache Cache, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:  repo,
		cars:  cars,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Create создаёт заказ: проверяет автомобиль, считает стоимость,
// применяет промокод и атомарно записывает заказ вместе со снятием
// доступности автомобиля.
func (s *OrderService) Create(ctx context.Context, userUID, fullname string, req models.DummyOrder) (*models.Order, error) {
	car, err := s.cars.GetCar(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("Car not found or is not available!")
		}
		return nil, err
	}
	if !car.IsAvailable {
		return nil, apperr.Validation("Car not found or is not available!")
	}
	if car.IsDriverRequired && !*req.IsDriver {
		return nil, apperr.Validation("This car must be rented with a driver!")
	}

	startTime, endTime, err := parseRentalPeriod(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	total := rental.Total(car.Price, startTime, endTime)
	var promoCode *string
	if req.Promo != "" {
		total, err = s.applyPromo(total, req.Promo)
		if err != nil {
			return nil, err
		}
		promoCode = &req.Promo
	}

	order := models.Order{
		Status:        models.OrderStatusPending,
		StartTime:     startTime,
		EndTime:       endTime,
		IsDriver:      *req.IsDriver,
		PaymentMethod: req.PaymentMethod,
		PromoCode:     promoCode,
		Total:         total,
		CarID:         req.CarID,
		UserUID:       userUID,
		CreatedBy:     fullname,
		UpdatedBy:     fullname,
	}

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new order", slog.Int("id", id))

	created, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheOrder(created)
	s.invalidateCar(req.CarID)
	return created, nil
}

// Update пересчитывает стоимость по тем же правилам, что и Create,
// и сохраняет новые параметры заказа. Доступность автомобиля не меняется.
// Существование автомобиля здесь не проверяется отдельно: отсутствующий
// автомобиль всплывает как внутренняя ошибка хранилища.
func (s *OrderService) Update(ctx context.Context, id int, fullname string, req models.DummyOrder) (*models.Order, error) {
	car, err := s.cars.GetCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if car.IsDriverRequired && !*req.IsDriver {
		return nil, apperr.Validation("This car must be rented with a driver!")
	}

	startTime, endTime, err := parseRentalPeriod(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	total := rental.Total(car.Price, startTime, endTime)
	var promoCode *string
	if req.Promo != "" {
		total, err = s.applyPromo(total, req.Promo)
		if err != nil {
			return nil, err
		}
		promoCode = &req.Promo
	}

	order := models.Order{
		StartTime:     startTime,
		EndTime:       endTime,
		IsDriver:      *req.IsDriver,
		PaymentMethod: req.PaymentMethod,
		PromoCode:     promoCode,
		Total:         total,
		UpdatedBy:     fullname,
	}

	rows, err := s.repo.UpdateOrder(ctx, order, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.Validation("Order not found or is not available!")
	}
	s.log.Info("updated order", slog.Int("id", id))

	updated, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheOrder(updated)
	return updated, nil
}

// Payment переводит заказ в статус paid, присваивая номер счёта
// INV/{год}/{месяц}/{день}/{номер} и сохраняя квитанцию клиента.
func (s *OrderService) Payment(ctx context.Context, id int, receipt string) (*models.Order, error) {
	now := s.now()

	// Подсчёт и форматирование номера не атомарны: параллельные оплаты
	// в один день могут получить одинаковый номер.
	// TODO: заменить счётчик на последовательность в базе данных.
	count, err := s.repo.CountOrders(ctx, now)
	if err != nil {
		return nil, err
	}
	orderNo := rental.InvoiceNumber(now, count)

	rows, err := s.repo.MarkOrderPaid(ctx, id, orderNo, receipt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.Validation("Order not found or is not available!")
	}
	s.log.Info("order paid", slog.Int("id", id), slog.String("order_no", orderNo))

	paid, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheOrder(paid)
	return paid, nil
}

// Cancel отменяет заказ владельца: возвращает доступность автомобиля
// и переводит заказ в статус cancelled одной транзакцией.
func (s *OrderService) Cancel(ctx context.Context, id int, userUID string) (*models.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("Order not found or is not available!")
		}
		return nil, err
	}
	if order.UserUID != userUID {
		return nil, apperr.Validation("Order not found or is not available!")
	}

	if _, err := s.cars.GetCar(ctx, order.CarID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("Car not found or is not available!")
		}
		return nil, err
	}

	if err := s.repo.CancelOrder(ctx, order.ID, order.CarID); err != nil {
		return nil, err
	}
	s.log.Info("order cancelled", slog.Int("id", id))

	s.invalidateCar(order.CarID)
	cancelled, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheOrder(cancelled)
	return cancelled, nil
}

// Invoice формирует документ счёта для оплаченного заказа.
func (s *OrderService) Invoice(ctx context.Context, id int) ([]byte, error) {
	order, err := s.Read(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Validation("Order not found or is not available!")
		}
		return nil, err
	}
	if order.Status != models.OrderStatusPaid {
		return nil, apperr.Validation("Order not paid!")
	}
	return invoice.Render(order)
}

// Read возвращает заказ по ID, используя кеш или репозиторий.
func (s *OrderService) Read(ctx context.Context, id int) (*models.Order, error) {
	var result *models.Order
	cacheKey := fmt.Sprintf("order:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheOrder(result)
	return result, nil
}

// List возвращает список заказов с пагинацией; userUID сужает список
// до заказов одного пользователя.
func (s *OrderService) List(ctx context.Context, userUID *string, limit, offset int) ([]*models.Order, error) {
	return s.repo.ListOrders(ctx, userUID, limit, offset)
}

func (s *OrderService) cacheOrder(order *models.Order) {
	cacheKey := fmt.Sprintf("order:%d", order.ID)
	if err := s.cache.Set(cacheKey, order, time.Hour); err != nil {
		s.log.Warn("failed to cache order", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func (s *OrderService) invalidateCar(carID int) {
	cacheKey := fmt.Sprintf("car:%d", carID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate car cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func parseRentalPeriod(startStr, endStr string) (time.Time, time.Time, error) {
	startTime, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid start_time: expected RFC3339")
	}
	endTime, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid end_time: expected RFC3339")
	}
	if endTime.Before(startTime) {
		return time.Time{}, time.Time{}, apperr.Validation("end_time must not be earlier than start_time")
	}
	return startTime, endTime, nil
}
