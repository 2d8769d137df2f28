package repository

import (
	"context"
	"fmt"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// GetCar возвращает автомобиль по его ID.
func (s *Storage) GetCar(ctx context.Context, id int) (*models.Car, error) {
	const op = "storage.GetCar"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, is_available, is_driver_required
			  FROM cars WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var car models.Car
	if err := row.Scan(&car.ID, &car.Name, &car.Price,
		&car.IsAvailable, &car.IsDriverRequired); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &car, nil
}

// ListCars возвращает список автомобилей с пагинацией.
func (s *Storage) ListCars(ctx context.Context, limit, offset int) ([]*models.Car, error) {
	const op = "storage.ListCars"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, price, is_available, is_driver_required
			  FROM cars
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Car
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.ID, &car.Name, &car.Price,
			&car.IsAvailable, &car.IsDriverRequired); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCar обновляет данные автомобиля и возвращает количество изменённых строк.
func (s *Storage) UpdateCar(ctx context.Context, car models.Car, id int) (int, error) {
	const op = "storage.UpdateCar"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE cars
			  SET name = $1, price = $2, is_available = $3, is_driver_required = $4
			  WHERE id = $5`
	result, err := s.DB.ExecContext(ctx, query,
		car.Name, car.Price, car.IsAvailable, car.IsDriverRequired, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
