package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// CarRepository описывает методы хранилища автопарка.
type CarRepository interface {
	GetCar(ctx context.Context, id int) (*models.Car, error)
	ListCars(ctx context.Context, limit, offset int) ([]*models.Car, error)
	UpdateCar(ctx context.Context, car models.Car, id int) (int, error)
}

// Cache описывает методы кеширования данных автопарка.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// CarService инкапсулирует бизнес-логику работы с автопарком.
type CarService struct {
	repo  CarRepository
	cache Cache
	log   *slog.Logger
}

func NewCarService(repo CarRepository, cache Cache, log *slog.Logger) *CarService {
	return &CarService{repo: repo, cache: cache, log: log}
}

// List возвращает автомобили автопарка с пагинацией.
func (s *CarService) List(ctx context.Context, limit, offset int) ([]*models.Car, error) {
	return s.repo.ListCars(ctx, limit, offset)
}

// Read возвращает автомобиль по ID, используя кеш или репозиторий.
func (s *CarService) Read(ctx context.Context, id int) (*models.Car, error) {
	cacheKey := fmt.Sprintf("car:%d", id)

	var cached models.Car
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read car cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	car, err := s.repo.GetCar(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Car not found!")
		}
		return nil, err
	}
	if err := s.cache.Set(cacheKey, car, time.Hour); err != nil {
		s.log.Warn("failed to cache car", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return car, nil
}

// Update обновляет переданные поля автомобиля, не затрагивая остальные.
// Пустые поля запроса сохраняют текущие значения.
func (s *CarService) Update(ctx context.Context, id int, req models.DummyCar) (*models.Car, error) {
	car, err := s.repo.GetCar(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Car not found!")
		}
		return nil, err
	}

	if req.Name != "" {
		car.Name = req.Name
	}
	if req.Price != nil {
		car.Price = *req.Price
	}
	if req.IsAvailable != nil {
		car.IsAvailable = *req.IsAvailable
	}
	if req.IsDriverRequired != nil {
		car.IsDriverRequired = *req.IsDriverRequired
	}

	rows, err := s.repo.UpdateCar(ctx, *car, id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NotFound("Car not found!")
	}
	s.log.Info("updated car", slog.Int("id", id))

	cacheKey := fmt.Sprintf("car:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate car cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return car, nil
}
