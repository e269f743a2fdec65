package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

func newTestSelector(kv *fakeKV, source *stubSource, static *stubStatic) *Selector {
	return NewSelector(&Dependencies{
		Source: source,
		KV:     kv,
		Static: static,
		Config: &Config{CacheTTL: 7 * 24 * time.Hour, DefaultBatchSize: 10},
	})
}

func TestSelector_NoRepeatsWithinCycle(t *testing.T) {
	// Arrange: 30 вопросов, батчи по 10
	source := &stubSource{questions: makeQuestions("q", 30)}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})
	ctx := context.Background()

	seen := make(map[string]struct{})

	// Act: три батча подряд исчерпывают пул
	for i := 0; i < 3; i++ {
		batch := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 10)
		require.Len(t, batch, 10, "батч %d должен содержать 10 вопросов", i+1)

		// Assert: ни один ID не повторяется между батчами одного цикла
		for id := range ids(batch) {
			_, dup := seen[id]
			assert.False(t, dup, "ID %s не должен повторяться внутри цикла", id)
			seen[id] = struct{}{}
		}
	}
	assert.Len(t, seen, 30, "за цикл должны быть показаны все 30 вопросов")
}

func TestSelector_CycleResetAfterExhaustion(t *testing.T) {
	// Arrange: пул из 10, батч на весь пул
	source := &stubSource{questions: makeQuestions("q", 10)}
	kv := newFakeKV()
	selector := newTestSelector(kv, source, &stubStatic{})
	ctx := context.Background()

	// Act: первый батч показывает всё, второй должен перезапустить цикл
	first := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 10)
	require.Len(t, first, 10)

	second := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 10)

	// Assert: после сброса снова доступен весь пул
	assert.Len(t, second, 10, "после исчерпания пула цикл должен начинаться заново")
	assert.Equal(t, ids(first), ids(second), "новый цикл должен раздавать тот же пул")
}

func TestSelector_BatchSmallerThanRequested(t *testing.T) {
	// Arrange: в пуле меньше, чем запрошено
	source := &stubSource{questions: makeQuestions("q", 4)}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})

	// Act
	batch := selector.SelectBatch(context.Background(), "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 10)

	// Assert: возвращается всё, что есть, без добивки и без ошибки
	assert.Len(t, batch, 4, "при нехватке вопросов возвращаются все доступные")
}

func TestSelector_DefaultBatchSize(t *testing.T) {
	// Arrange
	source := &stubSource{questions: makeQuestions("q", 30)}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})

	// Act: requestedCount <= 0 означает размер по умолчанию
	batch := selector.SelectBatch(context.Background(), "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 0)

	// Assert
	assert.Len(t, batch, 10, "нулевой запрос должен давать батч размера по умолчанию")
}

func TestSelector_CacheHitSkipsSource(t *testing.T) {
	// Arrange
	source := &stubSource{questions: makeQuestions("q", 20)}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})
	ctx := context.Background()

	// Act: два запроса на один и тот же ключ
	selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)
	selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert: источник дёрнут только один раз, второй запрос обслужен кешем
	assert.Equal(t, 1, source.calls, "при свежем кеше источник не должен вызываться повторно")
}

func TestSelector_UnplayableFilteredOut(t *testing.T) {
	// Arrange: источник отдаёт две битые записи среди пригодных
	questions := makeQuestions("q", 5)
	questions[1].Options = entity.StringArray{"A", "B"}
	questions[3].ID = ""
	source := &stubSource{questions: questions}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})

	// Act
	batch := selector.SelectBatch(context.Background(), "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 10)

	// Assert: битые записи не попадают в батч
	assert.Len(t, batch, 3, "непригодные записи должны отбрасываться до перемешивания")
	got := ids(batch)
	assert.NotContains(t, got, "", "запись без ID не должна попасть в батч")
	assert.NotContains(t, got, "q_2", "запись с двумя вариантами не должна попасть в батч")
}

func TestSelector_SourceFailureFallsBackToStatic(t *testing.T) {
	// Arrange: источник недоступен, кеш пуст
	source := &stubSource{err: errors.New("источник недоступен")}
	static := &stubStatic{questions: makeQuestions("static", 5)}
	kv := newFakeKV()
	selector := newTestSelector(kv, source, static)

	// Act
	batch := selector.SelectBatch(context.Background(), "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert: батч пришёл из статического набора
	require.Len(t, batch, 5, "fallback должен отдать статические вопросы")
	for id := range ids(batch) {
		assert.Contains(t, id, "static_", "все ID батча должны быть из статического набора")
	}

	// Fallback не хранит состояния: ни кеш, ни трекер не записаны
	assert.Empty(t, kv.store, "статический fallback не должен писать в хранилище")
}

func TestSelector_StaticFallbackStateless(t *testing.T) {
	// Arrange: навсегда сломанный источник
	source := &stubSource{err: errors.New("источник недоступен")}
	static := &stubStatic{questions: makeQuestions("static", 5)}
	selector := newTestSelector(newFakeKV(), source, static)
	ctx := context.Background()

	// Act: повторные fallback-запросы
	first := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)
	second := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert: исключение показанных к fallback не применяется,
	// оба батча раздают полный статический пул
	assert.Equal(t, ids(first), ids(second), "fallback-батчи должны независимо раздавать весь набор")
}

func TestSelector_EmptyValidSetFallsBackToStatic(t *testing.T) {
	// Arrange: источник доступен, но все записи непригодны
	broken := makeQuestions("q", 3)
	for i := range broken {
		broken[i].Options = entity.StringArray{}
	}
	source := &stubSource{questions: broken}
	static := &stubStatic{questions: makeQuestions("static", 2)}
	selector := newTestSelector(newFakeKV(), source, static)

	// Act
	batch := selector.SelectBatch(context.Background(), "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert
	assert.Len(t, batch, 2, "при пустом пригодном наборе должен использоваться статический")
}

func TestSelector_ExpiredCacheRefetches(t *testing.T) {
	// Arrange
	source := &stubSource{questions: makeQuestions("q", 10)}
	selector := newTestSelector(newFakeKV(), source, &stubStatic{})
	ctx := context.Background()

	selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)
	require.Equal(t, 1, source.calls)

	// Просрочиваем запись, сдвинув часы кеша за TTL
	base := time.Now().Add(8 * 24 * time.Hour)
	selector.cache.now = func() time.Time { return base }

	// Act
	selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert: просроченный кеш эквивалентен промаху
	assert.Equal(t, 2, source.calls, "просроченный кеш должен приводить к повторному фетчу")
}

func TestSelector_KeysAreScopedPerCombination(t *testing.T) {
	// Arrange & Act
	ckey := cacheKey("gospel", entity.QuestionTypeSong, entity.ContentKindLyrics)
	ukey := usageKey("gospel", entity.QuestionTypeSong, entity.ContentKindLyrics)

	// Assert: формат ключей фиксирован, по ключу на комбинацию
	assert.Equal(t, "lyricsCache:gospel:song", ckey)
	assert.Equal(t, "usedQuestions:lyrics:gospel:song", ukey)

	audio := cacheKey("gospel", entity.QuestionTypeSong, entity.ContentKindAudio)
	assert.Equal(t, "audioCache:gospel:song", audio, "аудио и текст должны жить в разных ключах")
}

func TestSelector_UsageSurvivesAcrossBatches(t *testing.T) {
	// Arrange
	source := &stubSource{questions: makeQuestions("q", 20)}
	kv := newFakeKV()
	selector := newTestSelector(kv, source, &stubStatic{})
	ctx := context.Background()

	// Act
	batch := selector.SelectBatch(ctx, "gospel", entity.QuestionTypeSong, entity.ContentKindLyrics, 5)

	// Assert: показанные ID персистированы под ключом трекера
	tracker := NewUsageTracker(kv)
	used := tracker.GetUsed(ctx, "usedQuestions:lyrics:gospel:song")
	assert.Equal(t, ids(batch), used, "все выданные ID должны быть отмечены в трекере")
}
