package jwt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// CustomClaims описывает данные сессии, хранящиеся в JWT.
// ID (jti) уникален для каждого токена и используется для отзыва при выходе.
type CustomClaims struct {
	UserID               int64       `json:"uid"`
	FullName             string      `json:"name"`
	Email                string      `json:"email"`
	Role                 models.Role `json:"role"`
	jwt.RegisteredClaims             // ExpiresAt, IssuedAt, ID и пр.
}

// Session переводит claims в сессию.
func (c *CustomClaims) Session() *models.Session {
	s := &models.Session{
		UserID:   c.UserID,
		FullName: c.FullName,
		Email:    c.Email,
		Role:     c.Role,
		TokenID:  c.ID,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// GenerateToken создает JWT токен для пользователя, подписывая его секретным ключом.
//
// Роль берётся из пользователя в момент выпуска и в токене больше не меняется.
func (j *MakerImpl) GenerateToken(user models.User) (string, *CustomClaims, error) {
	const op = "jwt.GenerateToken"
	now := j.now()
	claims := &CustomClaims{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return signed, claims, nil
}

// ParseToken парсит JWT токен, проверяет его подпись и валидность,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("token id missing"))
	}
	return claims, nil
}
