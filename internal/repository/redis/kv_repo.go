package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// KVRepo реализует repository.KVRepository поверх Redis
type KVRepo struct {
	client redis.UniversalClient
}

// NewKVRepo создает новый key-value репозиторий и возвращает ошибку при проблемах
func NewKVRepo(client redis.UniversalClient) (*KVRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for KVRepo")
	}
	return &KVRepo{client: client}, nil
}

// Get возвращает строковое значение по ключу
func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// Set сохраняет строковое значение по ключу
func (r *KVRepo) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Delete удаляет ключ
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
