package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (uid, email, password_hash, fullname, provider,
			      google_id, avatar, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING uid`
	var newUID string
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Email, user.PasswordHash, user.Fullname, user.Provider,
		user.GoogleID, user.Avatar, user.Role).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по электронной почте.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, fullname, provider, google_id,
			      avatar, role, created_at
			  FROM users
			  WHERE email = $1`
	return s.getUser(ctx, op, query, email)
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, fullname, provider, google_id,
			      avatar, role, created_at
			  FROM users
			  WHERE uid = $1`
	return s.getUser(ctx, op, query, uid)
}

// LinkGoogleAccount переводит локальную учётную запись на провайдера google,
// сохраняя федеративный идентификатор. Возвращает количество изменённых строк.
func (s *Storage) LinkGoogleAccount(ctx context.Context, uid, googleID string) (int, error) {
	const op = "storage.LinkGoogleAccount"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET provider = $1, google_id = $2
			  WHERE uid = $3`
	result, err := s.DB.ExecContext(ctx, query, models.ProviderGoogle, googleID, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func (s *Storage) getUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, arg)

	var passwordHash, googleID, avatar sql.NullString
	if err := row.Scan(&u.UID, &u.Email, &passwordHash, &u.Fullname,
		&u.Provider, &googleID, &avatar, &u.Role, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if passwordHash.Valid {
		u.PasswordHash = &passwordHash.String
	}
	if googleID.Valid {
		u.GoogleID = &googleID.String
	}
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return u, nil
}
