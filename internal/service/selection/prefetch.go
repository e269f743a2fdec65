package selection

import (
	"context"
	"log"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// WarmCaches последовательно прогревает кеш для каждой комбинации
// категория x тип вопроса x вид контента. Это оптимизация старта, а не
// требование корректности: неудавшиеся комбинации логируются и пропускаются,
// свежие не перезапрашиваются. Прерывается по отмене контекста.
func (s *Selector) WarmCaches(ctx context.Context) {
	types := []entity.QuestionType{entity.QuestionTypeSong, entity.QuestionTypeArtist, entity.QuestionTypeBoth}
	kinds := []entity.ContentKind{entity.ContentKindAudio, entity.ContentKindLyrics}

	warmed, skipped, failed := 0, 0, 0
	for _, category := range UICategories {
		for _, kind := range kinds {
			for _, questionType := range types {
				if ctx.Err() != nil {
					log.Printf("[Prefetch] Прогрев прерван: %v", ctx.Err())
					return
				}

				ckey := cacheKey(category, questionType, kind)
				if _, ok := s.cache.Read(ctx, ckey); ok {
					skipped++
					continue
				}

				fetched, err := s.fetchRemote(ctx, category, questionType, kind)
				if err != nil {
					log.Printf("[Prefetch] Не удалось прогреть %s: %v", ckey, err)
					failed++
					continue
				}
				s.cache.Write(ctx, ckey, fetched)
				warmed++
			}
		}
	}

	log.Printf("[Prefetch] Прогрев кеша завершён: %d обновлено, %d свежих пропущено, %d с ошибкой",
		warmed, skipped, failed)
}
