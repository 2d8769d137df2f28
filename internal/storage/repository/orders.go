package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// CreateOrder вставляет новый заказ и снимает доступность автомобиля
// в одной транзакции: обе записи видны вместе или не видны вовсе.
// Возвращает ID созданного заказа.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (int, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO orders (status, start_time, end_time, is_driver,
			      payment_method, promo_code, total, car_id, user_uid,
			      created_by, updated_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	var newID int
	if err := tx.QueryRowContext(ctx, query,
		order.Status, order.StartTime, order.EndTime, order.IsDriver,
		order.PaymentMethod, order.PromoCode, order.Total, order.CarID,
		order.UserUID, order.CreatedBy, order.UpdatedBy).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE cars SET is_available = false WHERE id = $1`, order.CarID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetOrder возвращает заказ по ID вместе с проекциями автомобиля и пользователя.
func (s *Storage) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	const op = "storage.GetOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT o.id, o.order_no, o.status, o.start_time, o.end_time,
			      o.is_driver, o.payment_method, o.promo_code, o.receipt, o.total,
			      o.car_id, o.user_uid, o.created_by, o.updated_by, o.created_at,
			      c.id, c.name, c.price, c.is_available, c.is_driver_required,
			      u.uid, u.email, u.fullname, u.provider, u.avatar, u.role
			  FROM orders o
			  JOIN cars c ON c.id = o.car_id
			  JOIN users u ON u.uid = o.user_uid
			  WHERE o.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

// UpdateOrder обновляет параметры заказа (сроки, водитель, оплата, промокод,
// стоимость) и возвращает количество изменённых строк. Доступность
// автомобиля не затрагивается.
func (s *Storage) UpdateOrder(ctx context.Context, order models.Order, id int) (int, error) {
	const op = "storage.UpdateOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE orders
			  SET start_time = $1, end_time = $2, is_driver = $3,
			      payment_method = $4, promo_code = $5, total = $6, updated_by = $7
			  WHERE id = $8`
	result, err := s.DB.ExecContext(ctx, query,
		order.StartTime, order.EndTime, order.IsDriver, order.PaymentMethod,
		order.PromoCode, order.Total, order.UpdatedBy, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// MarkOrderPaid переводит заказ в статус paid, сохраняя номер счёта и квитанцию.
func (s *Storage) MarkOrderPaid(ctx context.Context, id int, orderNo, receipt string) (int, error) {
	const op = "storage.MarkOrderPaid"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE orders
			  SET status = $1, order_no = $2, receipt = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		models.OrderStatusPaid, orderNo, receipt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// CancelOrder возвращает доступность автомобиля и переводит заказ в статус
// cancelled в одной транзакции, симметрично CreateOrder.
func (s *Storage) CancelOrder(ctx context.Context, orderID, carID int) error {
	const op = "storage.CancelOrder"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`UPDATE cars SET is_available = true WHERE id = $1`, carID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		models.OrderStatusCancelled, orderID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListOrders возвращает список заказов с пагинацией. Если userUID задан,
// список ограничивается заказами этого пользователя.
func (s *Storage) ListOrders(ctx context.Context, userUID *string, limit, offset int) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT o.id, o.order_no, o.status, o.start_time, o.end_time,
			      o.is_driver, o.payment_method, o.promo_code, o.receipt, o.total,
			      o.car_id, o.user_uid, o.created_by, o.updated_by, o.created_at,
			      c.id, c.name, c.price, c.is_available, c.is_driver_required,
			      u.uid, u.email, u.fullname, u.provider, u.avatar, u.role
			  FROM orders o
			  JOIN cars c ON c.id = o.car_id
			  JOIN users u ON u.uid = o.user_uid
			  WHERE $1::uuid IS NULL OR o.user_uid = $1
			  ORDER BY o.id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountOrders подсчитывает количество заказов, созданных не позднее
// заданного момента. Используется при формировании номера счёта.
func (s *Storage) CountOrders(ctx context.Context, until time.Time) (int, error) {
	const op = "storage.CountOrders"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE created_at <= $1`, until).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// scanner объединяет *sql.Row и *sql.Rows для scanOrder.
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*models.Order, error) {
	var (
		order             models.Order
		car               models.Car
		user              models.User
		orderNo           sql.NullString
		promoCode         sql.NullString
		receipt           sql.NullString
		userAvatar        sql.NullString
	)
	if err := row.Scan(&order.ID, &orderNo, &order.Status, &order.StartTime,
		&order.EndTime, &order.IsDriver, &order.PaymentMethod, &promoCode,
		&receipt, &order.Total, &order.CarID, &order.UserUID,
		&order.CreatedBy, &order.UpdatedBy, &order.CreatedAt,
		&car.ID, &car.Name, &car.Price, &car.IsAvailable, &car.IsDriverRequired,
		&user.UID, &user.Email, &user.Fullname, &user.Provider, &userAvatar,
		&user.Role); err != nil {
		return nil, err
	}

	if orderNo.Valid {
		order.OrderNo = &orderNo.String
	}
	if promoCode.Valid {
		order.PromoCode = &promoCode.String
	}
	if receipt.Valid {
		order.Receipt = &receipt.String
	}
	if userAvatar.Valid {
		user.Avatar = &userAvatar.String
	}
	order.Car = &car
	order.User = &user
	return &order, nil
}
