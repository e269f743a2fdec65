package selection

import (
	"time"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	"github.com/yourusername/musicquiz-api/internal/domain/repository"
)

// Constants for default values
const (
	// DefaultBatchSize - размер батча, если вызывающий код не указал свой
	DefaultBatchSize = 10

	// MaxBatchSize - потолок размера батча; применяется вызывающим кодом
	// (HTTP-обработчиком), сам селектор потолок не навязывает
	MaxBatchSize = 20

	// DefaultCacheTTL - окно свежести кеша вопросов
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Config содержит настройки подсистемы выбора вопросов
type Config struct {
	// CacheTTL - срок, после которого закешированный набор считается
	// отсутствующим и перезапрашивается
	CacheTTL time.Duration

	// DefaultBatchSize - размер батча по умолчанию
	DefaultBatchSize int
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		CacheTTL:         DefaultCacheTTL,
		DefaultBatchSize: DefaultBatchSize,
	}
}

// StaticSet определяет контракт встроенного статического набора вопросов -
// последнего fallback, когда ни сеть, ни кеш недоступны. Не бывает ошибок
// и состояния: просто список записей категории.
type StaticSet interface {
	Questions(category string, questionType entity.QuestionType, kind entity.ContentKind) []entity.Question
}

// Dependencies содержит зависимости селектора
type Dependencies struct {
	Source repository.QuestionSource
	KV     repository.KVRepository
	Static StaticSet
	Config *Config
}
