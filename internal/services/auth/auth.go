// Package services содержит логику регистрации, входа и проверки сессий.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/jwt"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/password"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или models.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Revoker хранит отозванные сессии.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService отвечает за регистрацию, вход, проверку и отзыв сессий.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	revoked  Revoker
	now      func() time.Time
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, revoked Revoker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		revoked:  revoked,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создаёт пользователя с ролью из формы. Роль admin через регистрацию
// получить нельзя.
func (s *AuthService) Register(ctx context.Context, form models.RegisterForm) (int64, error) {
	const op = "services.auth.Register"

	role, err := models.ParseRole(strings.ToLower(strings.TrimSpace(form.Category)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !role.SelfRegistrable() {
		return 0, fmt.Errorf("%s: %w: category %q is not available for sign up", op, models.ErrValidation, role)
	}

	hashed, err := password.GetHash(form.Password)
	if errors.Is(err, password.ErrTooLong) {
		return 0, fmt.Errorf("%s: %w: password must be at most %d bytes", op, models.ErrValidation, password.MaxLength)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.users.CreateUser(ctx, models.User{
		FullName:     strings.TrimSpace(form.FullName),
		Email:        normalizeEmail(form.Email),
		Phone:        strings.TrimSpace(form.Phone),
		PasswordHash: hashed,
		Role:         role,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// SignIn проверяет пароль и выпускает сессионный токен.
// Неизвестный email и неверный пароль неразличимы: оба дают models.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, rawPassword string) (string, *models.Session, error) {
	const op = "services.auth.SignIn"

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, claims, err := s.jwtMaker.GenerateToken(*user)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, claims.Session(), nil
}

// Authenticate разбирает токен и проверяет, что сессия не отозвана.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	const op = "services.auth.Authenticate"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, models.ErrInvalidCredentials, err)
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, fmt.Errorf("%s: %w: session revoked", op, models.ErrInvalidCredentials)
	}
	return claims.Session(), nil
}

// SignOut отзывает сессию до истечения срока её токена.
func (s *AuthService) SignOut(ctx context.Context, session *models.Session) error {
	const op = "services.auth.SignOut"
	if session == nil {
		return nil
	}
	if err := s.revoked.Revoke(ctx, session.TokenID, session.ExpiresAt.Sub(s.now())); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AdminAccount: учётные данные администратора для первичного создания.
type AdminAccount struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// EnsureAdmin создаёт администратора, если пользователя с таким email нет.
// Возвращает true, если пользователь был создан.
func (s *AuthService) EnsureAdmin(ctx context.Context, acc AdminAccount) (bool, error) {
	const op = "services.auth.EnsureAdmin"
	email := normalizeEmail(acc.Email)

	existing, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != models.RoleAdmin {
			return false, fmt.Errorf("%s: %w: %s belongs to a %s account", op, models.ErrDuplicateEmail, email, existing.Role)
		}
		return false, nil
	case !errors.Is(err, models.ErrNotFound):
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if acc.Password == "" {
		return false, fmt.Errorf("%s: %w: admin password is not configured", op, models.ErrValidation)
	}
	hashed, err := password.GetHash(acc.Password)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	_, err = s.users.CreateUser(ctx, models.User{
		FullName:     acc.FullName,
		Email:        email,
		Phone:        acc.Phone,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, models.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
