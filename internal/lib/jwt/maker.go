// Package jwt реализует выпуск и разбор сессионных JWT токенов CareConnect.
//
// Maker определяет интерфейс для создания и проверки токенов, несущих
// идентификатор пользователя и его роль. MakerImpl: реализация на HS256
// с секретным ключом и временем жизни токена.
package jwt

import (
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя и возвращает его вместе с claims.
	GenerateToken(user models.User) (string, *CustomClaims, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
	now       func() time.Time
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}
