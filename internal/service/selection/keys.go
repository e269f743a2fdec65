package selection

import (
	"fmt"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// Ключи в персистентном хранилище. Кеш и трекер показанных вопросов живут
// в разных пространствах ключей и инвалидируются независимо.

// cacheKey возвращает ключ кеша: "{kind}Cache:{category}:{type}"
func cacheKey(category string, questionType entity.QuestionType, kind entity.ContentKind) string {
	return fmt.Sprintf("%sCache:%s:%s", kind, category, questionType)
}

// usageKey возвращает ключ трекера: "usedQuestions:{kind}:{category}:{type}"
func usageKey(category string, questionType entity.QuestionType, kind entity.ContentKind) string {
	return fmt.Sprintf("usedQuestions:%s:%s:%s", kind, category, questionType)
}
