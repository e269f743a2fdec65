package selection

import (
	"math/rand"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// Категории, доступные игроку. "general" - сборная из всех пяти.
const CategoryGeneral = "general"

// UICategories - пять поставляемых категорий
var UICategories = []string{"afrobeats", "gospel", "highlife", "throwback", "blues"}

// Таблицы текстовых и аудио-вопросов исторически используют разные написания
// категорий, поэтому сопоставления раздельные.
var lyricsStorageKeys = map[string][]string{
	"afrobeats": {"afrobeats"},
	"gospel":    {"gospel"},
	"highlife":  {"highlife"},
	"throwback": {"throwback"},
	"blues":     {"blues"},
}

var audioStorageKeys = map[string][]string{
	"afrobeats": {"Afrobeat"},
	"gospel":    {"Gospel"},
	"highlife":  {"high-life"},
	"throwback": {"throwback"},
	"blues":     {"blues"},
}

// IsKnownCategory проверяет, что категория входит в число поставляемых
func IsKnownCategory(category string) bool {
	if category == CategoryGeneral {
		return true
	}
	for _, c := range UICategories {
		if c == category {
			return true
		}
	}
	return false
}

// storageCategories возвращает ключи категории в хранилище контента.
// "general" разворачивается во все пять; неизвестная категория передаётся
// как есть - вдруг вызывающий код знает ключ хранилища напрямую.
func storageCategories(category string, kind entity.ContentKind) []string {
	table := lyricsStorageKeys
	if kind == entity.ContentKindAudio {
		table = audioStorageKeys
	}

	if category == CategoryGeneral {
		keys := make([]string, 0, len(UICategories))
		for _, ui := range UICategories {
			keys = append(keys, table[ui]...)
		}
		return keys
	}

	if keys, ok := table[category]; ok {
		return keys
	}
	return []string{category}
}

// pickStorageCategory выбирает один ключ хранилища для текущей сессии.
// Для одиночных категорий выбор детерминирован, для "general" - случайная
// из пяти. Кеш и трекер при этом ключуются категорией вызывающего кода,
// поэтому случайность выбора на трекинг не влияет.
func pickStorageCategory(category string, kind entity.ContentKind) string {
	keys := storageCategories(category, kind)
	return keys[rand.Intn(len(keys))]
}
