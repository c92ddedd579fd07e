// Package cache хранит отозванные сессии в Redis.
//
// Ключ: jti токена, TTL: остаток срока жизни токена, поэтому записи
// исчезают сами, когда токен всё равно перестаёт быть валидным.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cyb3erasad/Donor-Management-System/internal/config"
)

const revokedPrefix = "session:revoked:"

// Cache обёртка над клиентом Redis.
type Cache struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{Db: db}, nil
}

// Revoke помечает сессию отозванной до истечения ttl.
// Неположительный ttl означает, что токен уже истёк, запись не нужна.
func (c *Cache) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	const op = "cache.Revoke"
	if ttl <= 0 {
		return nil
	}
	if err := c.Db.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRevoked сообщает, была ли сессия отозвана.
func (c *Cache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	const op = "cache.IsRevoked"
	err := c.Db.Get(ctx, revokedPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Ping проверяет доступность Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.Db.Ping(ctx).Err()
}

// Close закрывает соединение.
func (c *Cache) Close() error {
	return c.Db.Close()
}
