package selection

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// Selector собирает батч вопросов: кеш → удалённый источник → фильтрация
// показанных → перемешивание → срез, со статическим fallback при недоступности
// данных. Публичный контракт никогда не возвращает ошибку - в худшем случае
// батч будет меньше запрошенного или придёт из встроенного набора.
type Selector struct {
	deps  *Dependencies
	cache *CacheStore
	usage *UsageTracker

	// Критическая секция чтения-изменения-записи трекера сериализуется
	// по ключу на случай перекрывающихся запросов на один и тот же ключ
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSelector создает новый селектор вопросов
func NewSelector(deps *Dependencies) *Selector {
	if deps.Config == nil {
		deps.Config = DefaultConfig()
	}
	return &Selector{
		deps:  deps,
		cache: NewCacheStore(deps.KV, deps.Config.CacheTTL),
		usage: NewUsageTracker(deps.KV),
		locks: make(map[string]*sync.Mutex),
	}
}

// SelectBatch возвращает до requestedCount перемешанных, не повторяющихся
// в рамках цикла вопросов для комбинации (категория, тип, вид контента).
// requestedCount <= 0 означает размер по умолчанию.
func (s *Selector) SelectBatch(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind, requestedCount int) []entity.Question {
	if requestedCount <= 0 {
		requestedCount = s.deps.Config.DefaultBatchSize
	}

	ckey := cacheKey(category, questionType, kind)
	ukey := usageKey(category, questionType, kind)

	unlock := s.lockKey(ukey)
	defer unlock()

	// 1. Кеш, затем удалённый источник
	working, ok := s.cache.Read(ctx, ckey)
	if !ok {
		fetched, err := s.fetchRemote(ctx, category, questionType, kind)
		if err != nil {
			log.Printf("[Selector] Источник недоступен для %s/%s/%s, переходим на статический набор: %v",
				kind, category, questionType, err)
			// Статический fallback без участия кеша и трекера
			return s.staticBatch(category, questionType, kind, requestedCount)
		}
		s.cache.Write(ctx, ckey, fetched)
		working = fetched
	}

	// 2. Отбрасываем непригодные записи до перемешивания
	valid := working[:0:0]
	for i := range working {
		if working[i].IsPlayable() {
			valid = append(valid, working[i])
		}
	}
	if len(valid) == 0 {
		log.Printf("[Selector] Нет пригодных вопросов для %s/%s/%s, переходим на статический набор",
			kind, category, questionType)
		return s.staticBatch(category, questionType, kind, requestedCount)
	}

	// 3. Исключаем уже показанные
	used := s.usage.GetUsed(ctx, ukey)
	available := make([]entity.Question, 0, len(valid))
	for i := range valid {
		if _, seen := used[valid[i].ID]; !seen {
			available = append(available, valid[i])
		}
	}

	// 4. Завершение цикла: показано всё - сбрасываем трекер целиком.
	// Срабатывает по счётчику, а не только по пустоте available, чтобы не
	// сбрасываться раньше времени, если пул вырос с прошлого раза.
	if len(used) >= len(valid) || len(available) == 0 {
		log.Printf("[Selector] Цикл по ключу %s завершён (%d показано из %d доступных), сбрасываем трекер",
			ukey, len(used), len(valid))
		s.usage.Clear(ctx, ukey)
		available = valid
	}

	// 5. Перемешиваем и отрезаем запрошенное количество
	batch := shuffledSlice(available, requestedCount)

	// 6. Отмечаем выбранные как показанные
	if len(batch) > 0 {
		ids := make([]string, len(batch))
		for i := range batch {
			ids[i] = batch[i].ID
		}
		s.usage.MarkUsed(ctx, ukey, ids)
	}

	return batch
}

// fetchRemote запрашивает источник, подобрав ключ категории в хранилище
func (s *Selector) fetchRemote(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind) ([]entity.Question, error) {
	storageCategory := pickStorageCategory(category, kind)
	if storageCategory != category {
		log.Printf("[Selector] Категория %q отображена в ключ хранилища %q (%s)", category, storageCategory, kind)
	}
	return s.deps.Source.FetchAll(ctx, storageCategory, questionType, kind)
}

// staticBatch собирает батч из встроенного статического набора: то же
// перемешивание и срез, но без кеша и трекинга (fallback не хранит состояния).
func (s *Selector) staticBatch(category string, questionType entity.QuestionType, kind entity.ContentKind, requestedCount int) []entity.Question {
	pool := s.deps.Static.Questions(category, questionType, kind)
	return shuffledSlice(pool, requestedCount)
}

// shuffledSlice возвращает до n элементов честной случайной перестановки src.
// Если элементов меньше n - возвращаются все, без добивки и без ошибки.
func shuffledSlice(src []entity.Question, n int) []entity.Question {
	out := make([]entity.Question, len(src))
	copy(out, src)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// lockKey берет мьютекс ключа и возвращает функцию освобождения
func (s *Selector) lockKey(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}
