package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

func TestSet_AllCategoriesNonEmpty(t *testing.T) {
	// Arrange
	set := NewSet()
	categories := []string{"afrobeats", "gospel", "highlife", "throwback", "blues"}

	// Act & Assert: каждая категория поставляется в обоих видах контента
	for _, category := range categories {
		lyrics := set.Questions(category, entity.QuestionTypeBoth, entity.ContentKindLyrics)
		assert.NotEmpty(t, lyrics, "категория %q должна иметь текстовые вопросы", category)

		audio := set.Questions(category, entity.QuestionTypeBoth, entity.ContentKindAudio)
		assert.NotEmpty(t, audio, "категория %q должна иметь аудио-вопросы", category)
	}
}

func TestSet_AllQuestionsPlayable(t *testing.T) {
	// Arrange
	set := NewSet()

	// Act & Assert: каждая встроенная запись пригодна для игры -
	// fallback не имеет права отдавать битый контент
	for _, category := range []string{"afrobeats", "gospel", "highlife", "throwback", "blues"} {
		for _, kind := range []entity.ContentKind{entity.ContentKindLyrics, entity.ContentKindAudio} {
			for _, q := range set.Questions(category, entity.QuestionTypeBoth, kind) {
				assert.True(t, q.IsPlayable(), "встроенный вопрос %s (%s/%s) должен быть пригоден", q.ID, category, kind)
				assert.Equal(t, kind, q.ContentKind, "вид контента записи %s должен совпадать с запрошенным", q.ID)
			}
		}
	}
}

func TestSet_TypeFiltering(t *testing.T) {
	// Arrange
	set := NewSet()

	// Act
	songs := set.Questions("gospel", entity.QuestionTypeSong, entity.ContentKindLyrics)
	artists := set.Questions("gospel", entity.QuestionTypeArtist, entity.ContentKindLyrics)
	both := set.Questions("gospel", entity.QuestionTypeBoth, entity.ContentKindLyrics)

	// Assert: both - надмножество обоих узких типов
	require.NotEmpty(t, both)
	assert.LessOrEqual(t, len(songs), len(both), "запрос both должен включать песенные записи")
	assert.LessOrEqual(t, len(artists), len(both), "запрос both должен включать артистные записи")
	for _, q := range songs {
		assert.True(t, q.MatchesType(entity.QuestionTypeSong), "запись %s должна подходить под запрос song", q.ID)
	}
}

func TestSet_GeneralCollectsAllCategories(t *testing.T) {
	// Arrange
	set := NewSet()

	// Act
	general := set.Questions("general", entity.QuestionTypeBoth, entity.ContentKindLyrics)

	// Assert: сборная содержит записи каждой категории
	seen := make(map[string]struct{})
	for _, q := range general {
		seen[q.Category] = struct{}{}
	}
	for _, category := range []string{"afrobeats", "gospel", "highlife", "throwback", "blues"} {
		assert.Contains(t, seen, category, "сборная general должна содержать категорию %q", category)
	}
}

func TestSet_SubgenreAliases(t *testing.T) {
	// Arrange
	set := NewSet()

	// Act: узкий поджанр сводится к родительской категории
	juju := set.Questions("juju", entity.QuestionTypeBoth, entity.ContentKindLyrics)
	highlife := set.Questions("highlife", entity.QuestionTypeBoth, entity.ContentKindLyrics)

	// Assert
	assert.Equal(t, highlife, juju, "juju должен отдавать набор категории highlife")
}

func TestSet_UniqueIDs(t *testing.T) {
	// Arrange
	set := NewSet()
	seen := make(map[string]struct{})

	// Act & Assert: ID уникальны во всём встроенном наборе
	for _, kind := range []entity.ContentKind{entity.ContentKindLyrics, entity.ContentKindAudio} {
		for _, q := range set.Questions("general", entity.QuestionTypeBoth, kind) {
			_, dup := seen[q.ID]
			assert.False(t, dup, "ID %s не должен повторяться", q.ID)
			seen[q.ID] = struct{}{}
		}
	}
}
