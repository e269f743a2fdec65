package repository

import (
	"context"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// QuestionSource определяет контракт удалённого источника вопросов.
// FetchAll возвращает полный нефильтрованный набор записей для пары
// (категория, тип вопроса) указанного вида контента. Для типа "both"
// источник объединяет записи из "песенной" и "артистной" таблиц
// (без дедупликации - перемешивание и срез ниже по потоку это переживут).
// Любая ошибка транспорта или запроса возвращается как ошибка целиком:
// частичных результатов не бывает.
type QuestionSource interface {
	FetchAll(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind) ([]entity.Question, error)
}
