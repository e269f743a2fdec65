package selection

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	"github.com/yourusername/musicquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// cachePayload - формат значения в кеше: момент фетча + сами данные.
// Свежесть определяется по ts на чтении, а не по TTL ключа в хранилище.
type cachePayload struct {
	TS   int64             `json:"ts"`
	Data []entity.Question `json:"data"`
}

// CacheStore хранит полные наборы вопросов с ленивой инвалидацией по TTL.
// Ошибки хранилища проглатываются (только лог): сбой кеша деградирует
// к "записи нет" и никогда не прерывает вызывающий поток.
type CacheStore struct {
	kv  repository.KVRepository
	ttl time.Duration

	// now подменяется в тестах
	now func() time.Time
}

// NewCacheStore создает новый кеш вопросов
func NewCacheStore(kv repository.KVRepository, ttl time.Duration) *CacheStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CacheStore{
		kv:  kv,
		ttl: ttl,
		now: time.Now,
	}
}

// Read возвращает закешированный набор вопросов.
// Вторым значением возвращается false, если записи нет, она просрочена
// (now - ts > TTL), повреждена или хранилище недоступно.
func (s *CacheStore) Read(ctx context.Context, key string) ([]entity.Question, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CacheStore] Ошибка чтения ключа %s: %v", key, err)
		}
		return nil, false
	}

	var payload cachePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("[CacheStore] Повреждённый payload по ключу %s: %v", key, err)
		return nil, false
	}

	age := s.now().UnixMilli() - payload.TS
	if age > s.ttl.Milliseconds() {
		// Просроченная запись эквивалентна отсутствующей, её не отдаём никогда
		return nil, false
	}

	return payload.Data, true
}

// Write безусловно перезаписывает набор вопросов, проставляя текущее время.
// Ошибка записи логируется и не возвращается.
func (s *CacheStore) Write(ctx context.Context, key string, data []entity.Question) {
	payload := cachePayload{
		TS:   s.now().UnixMilli(),
		Data: data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[CacheStore] Не удалось сериализовать payload для %s: %v", key, err)
		return
	}

	// TTL ключа в хранилище ставим вдвое больше логического:
	// это только сборка мусора, свежесть определяет ts в payload
	if err := s.kv.Set(ctx, key, string(raw), 2*s.ttl); err != nil {
		log.Printf("[CacheStore] Ошибка записи ключа %s: %v", key, err)
	}
}
