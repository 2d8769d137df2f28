package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mitrofanovm/car-rental-backend/internal/apperr"
	"github.com/mitrofanovm/car-rental-backend/internal/googleauth"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/jwt"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/password"
	"github.com/mitrofanovm/car-rental-backend/internal/lib/sl"
	"github.com/mitrofanovm/car-rental-backend/internal/models"
)

// UserRepository описывает методы хранилища пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
	// LinkGoogleAccount привязывает Google-идентификатор к существующей
	// локальной учётной записи, переводя её на федеративный провайдер.
	LinkGoogleAccount(ctx context.Context, uid, googleID string) (int, error)
}

// GoogleVerifier описывает проверку Google ID-токена.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*googleauth.TokenInfo, error)
}

// AuthService инкапсулирует регистрацию, вход и федеративную
// аутентификацию пользователей.
type AuthService struct {
	repo     UserRepository
	tokens   jwt.Maker
	verifier GoogleVerifier
	log      *slog.Logger
}

func NewAuthService(repo UserRepository, tokens jwt.Maker, verifier GoogleVerifier, log *slog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, verifier: verifier, log: log}
}

// SignUp регистрирует нового локального пользователя.
func (s *AuthService) SignUp(ctx context.Context, req models.DummyRegister) (*models.User, error) {
	const op = "auth.SignUp"

	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperr.Validation("Email already exist!")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		UID:          uuid.New().String(),
		Email:        req.Email,
		PasswordHash: &hash,
		Fullname:     req.Fullname,
		Provider:     models.ProviderLocal,
		Role:         "user",
	}
	uid, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("uid", uid))

	created, err := s.repo.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// SignIn проверяет учётные данные и выпускает JWT токен. Сообщение об
// ошибке одинаково для неизвестной почты и неверного пароля, чтобы не
// раскрывать существование учётной записи.
func (s *AuthService) SignIn(ctx context.Context, req models.DummyLogin) (string, *models.User, error) {
	const op = "auth.SignIn"

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, apperr.Validation("Invalid email or password")
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	// У федеративной учётной записи пароля нет, вход по паролю невозможен.
	if user.PasswordHash == nil {
		return "", nil, apperr.Validation("Invalid email or password")
	}
	if err := password.Compare(*user.PasswordHash, req.Password); err != nil {
		return "", nil, apperr.Validation("Invalid email or password")
	}

	token, err := s.tokens.GenerateToken(user.UID, user.Email, user.Fullname, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user signed in", slog.String("uid", user.UID))
	return token, user, nil
}

// GoogleSignIn проверяет ID-токен у Google и выпускает JWT токен.
// Существующая локальная учётная запись с той же почтой повышается до
// федеративной, незнакомая почта регистрируется как новый пользователь.
func (s *AuthService) GoogleSignIn(ctx context.Context, idToken string) (string, *models.User, error) {
	const op = "auth.GoogleSignIn"

	info, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		s.log.Warn("google token rejected", sl.Err(err))
		return "", nil, apperr.Unauthenticated("Invalid Google credential")
	}

	user, err := s.repo.GetUserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if user.Provider == models.ProviderLocal {
			if _, err := s.repo.LinkGoogleAccount(ctx, user.UID, info.Sub); err != nil {
				return "", nil, fmt.Errorf("%s: %w", op, err)
			}
			s.log.Info("linked google account", slog.String("uid", user.UID))
			user, err = s.repo.GetUser(ctx, user.UID)
			if err != nil {
				return "", nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	case errors.Is(err, sql.ErrNoRows):
		googleID := info.Sub
		newUser := models.User{
			UID:      uuid.New().String(),
			Email:    info.Email,
			Fullname: info.Name,
			Provider: models.ProviderGoogle,
			GoogleID: &googleID,
			Role:     "user",
		}
		if info.Picture != "" {
			avatar := info.Picture
			newUser.Avatar = &avatar
		}
		uid, err := s.repo.CreateUser(ctx, newUser)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("registered federated user", slog.String("uid", uid))
		user, err = s.repo.GetUser(ctx, uid)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.GenerateToken(user.UID, user.Email, user.Fullname, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// GetUser возвращает профиль пользователя по его идентификатору.
func (s *AuthService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("User not found!")
		}
		return nil, err
	}
	return user, nil
}
