package selection

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/yourusername/musicquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// UsageTracker хранит множества уже показанных ID вопросов, по одному
// множеству на ключ (категория, тип, вид контента). Множество только растёт
// через MarkUsed и очищается целиком через Clear - частичной очистки нет.
// Трекинг best-effort: любая ошибка хранилища деградирует к пустому
// множеству / no-op, изредка повторившийся вопрос - приемлемый исход.
type UsageTracker struct {
	kv repository.KVRepository
}

// NewUsageTracker создает новый трекер показанных вопросов
func NewUsageTracker(kv repository.KVRepository) *UsageTracker {
	return &UsageTracker{kv: kv}
}

// GetUsed возвращает множество показанных ID. Пустое множество, если ключа
// нет или чтение не удалось.
func (t *UsageTracker) GetUsed(ctx context.Context, key string) map[string]struct{} {
	used := make(map[string]struct{})
	for _, id := range t.readList(ctx, key) {
		used[id] = struct{}{}
	}
	return used
}

// MarkUsed добавляет ID к существующему множеству (объединение, не замена)
// и сохраняет его. Повторная отметка уже показанного ID ничего не меняет.
// Запись проверяется обратным чтением; расхождение логируется как warning,
// но ошибкой не становится.
func (t *UsageTracker) MarkUsed(ctx context.Context, key string, ids []string) {
	if len(ids) == 0 {
		return
	}

	existing := t.readList(ctx, key)
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}

	merged := existing
	added := false
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
		added = true
	}
	if !added {
		return
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		log.Printf("[UsageTracker] Не удалось сериализовать список для %s: %v", key, err)
		return
	}
	if err := t.kv.Set(ctx, key, string(raw), 0); err != nil {
		log.Printf("[UsageTracker] Ошибка записи ключа %s: %v", key, err)
		return
	}

	// Верификация: перечитываем и убеждаемся, что все ID действительно сохранены
	persisted := t.GetUsed(ctx, key)
	for _, id := range ids {
		if _, ok := persisted[id]; !ok {
			log.Printf("[UsageTracker] Warning: запись по ключу %s не подтвердилась (ID %s отсутствует после записи)", key, id)
			return
		}
	}
}

// Clear удаляет множество целиком. Вызывается при завершении цикла -
// когда показаны все доступные вопросы ключа.
func (t *UsageTracker) Clear(ctx context.Context, key string) {
	if err := t.kv.Delete(ctx, key); err != nil {
		log.Printf("[UsageTracker] Ошибка удаления ключа %s: %v", key, err)
	}
}

// readList читает персистированный список ID; ошибки деградируют к пустому списку
func (t *UsageTracker) readList(ctx context.Context, key string) []string {
	raw, err := t.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[UsageTracker] Ошибка чтения ключа %s: %v", key, err)
		}
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("[UsageTracker] Повреждённый список по ключу %s: %v", key, err)
		return nil
	}
	return ids
}
