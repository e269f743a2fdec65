package repository

import (
	"context"
	"time"
)

// KVRepository определяет контракт персистентного key-value хранилища.
// Используется кешем вопросов и трекером показанных вопросов с разными
// пространствами ключей. Хранилище обязано обеспечивать атомарность
// чтения/записи одного ключа, большего не требуется.
type KVRepository interface {
	// Get возвращает значение по ключу или apperrors.ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set сохраняет значение. expiration = 0 означает без истечения.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete удаляет ключ. Удаление несуществующего ключа - не ошибка.
	Delete(ctx context.Context, key string) error
}
