// Package data содержит встроенный статический набор вопросов - последний
// fallback, когда недоступны и удалённый источник, и кеш. Набор собран из
// пяти поставляемых категорий в двух видах контента и никогда не бывает
// источником ошибок.
package data

import (
	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

var lyricsByCategory = map[string][]entity.Question{
	"afrobeats": afrobeatsLyricsQuestions,
	"gospel":    gospelLyricsQuestions,
	"highlife":  highlifeLyricsQuestions,
	"throwback": throwbackLyricsQuestions,
	"blues":     bluesLyricsQuestions,
}

var audioByCategory = map[string][]entity.Question{
	"afrobeats": afrobeatsAudioQuestions,
	"gospel":    gospelAudioQuestions,
	"highlife":  highlifeAudioQuestions,
	"throwback": throwbackAudioQuestions,
	"blues":     bluesAudioQuestions,
}

// Узкие поджанры, которые могут прийти из старых клиентов, сводятся к
// поставляемым категориям
var categoryAliases = map[string]string{
	"nigerian-r&b":     "afrobeats",
	"nigerian-hip-hop": "afrobeats",
	"nigerian-gospel":  "gospel",
	"juju":             "highlife",
	"fuji":             "highlife",
	"apala":            "highlife",
	"afro-fusion":      "highlife",
	"nigerian-folk":    "throwback",
}

// Set реализует selection.StaticSet
type Set struct{}

// NewSet возвращает встроенный статический набор
func NewSet() Set {
	return Set{}
}

// Questions возвращает записи категории, отфильтрованные по типу вопроса.
// Категория "general" (и любая неизвестная) собирает записи всех категорий.
// Пустой результат возможен только для категории без контента нужного вида,
// чего для пяти поставляемых категорий не бывает.
func (Set) Questions(category string, questionType entity.QuestionType, kind entity.ContentKind) []entity.Question {
	byCategory := lyricsByCategory
	if kind == entity.ContentKindAudio {
		byCategory = audioByCategory
	}

	if alias, ok := categoryAliases[category]; ok {
		category = alias
	}

	var pool []entity.Question
	if questions, ok := byCategory[category]; ok {
		pool = questions
	} else {
		// "general" и неопознанные категории: сборная из всех
		for _, questions := range byCategory {
			pool = append(pool, questions...)
		}
	}

	out := make([]entity.Question, 0, len(pool))
	for i := range pool {
		if pool[i].MatchesType(questionType) {
			out = append(out, pool[i])
		}
	}
	return out
}
