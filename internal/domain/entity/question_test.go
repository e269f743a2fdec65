package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerLetter(t *testing.T) {
	// Act & Assert: буквы A-D отображаются в индексы 0-3
	assert.Equal(t, 0, ParseAnswerLetter("A"), "A должна давать индекс 0")
	assert.Equal(t, 1, ParseAnswerLetter("B"), "B должна давать индекс 1")
	assert.Equal(t, 2, ParseAnswerLetter("C"), "C должна давать индекс 2")
	assert.Equal(t, 3, ParseAnswerLetter("D"), "D должна давать индекс 3")
}

func TestParseAnswerLetter_CaseAndWhitespace(t *testing.T) {
	// Act & Assert: регистр и пробелы не влияют
	assert.Equal(t, 1, ParseAnswerLetter("b"), "строчная буква должна распознаваться")
	assert.Equal(t, 2, ParseAnswerLetter(" c "), "пробелы вокруг буквы должны игнорироваться")
	assert.Equal(t, 3, ParseAnswerLetter("d\n"), "перевод строки должен игнорироваться")
}

func TestParseAnswerLetter_Malformed(t *testing.T) {
	// Act & Assert: неразборчивые значения деградируют к 0, а не к ошибке
	assert.Equal(t, 0, ParseAnswerLetter(""), "пустая строка должна давать 0")
	assert.Equal(t, 0, ParseAnswerLetter("E"), "буква вне диапазона должна давать 0")
	assert.Equal(t, 0, ParseAnswerLetter("AB"), "несколько букв должны давать 0")
	assert.Equal(t, 0, ParseAnswerLetter("1"), "цифра должна давать 0")
}

func TestQuestion_IsPlayable(t *testing.T) {
	// Arrange
	playable := Question{
		ID:           "lyr_1",
		ContentKind:  ContentKindLyrics,
		QuestionType: QuestionTypeSong,
		Lyrics:       StringArray{"строка текста"},
		Options:      StringArray{"A", "B", "C", "D"},
	}

	// Act & Assert
	assert.True(t, playable.IsPlayable(), "полноценный текстовый вопрос должен быть пригоден")
}

func TestQuestion_IsPlayable_RejectsBrokenRecords(t *testing.T) {
	base := Question{
		ID:          "lyr_1",
		ContentKind: ContentKindLyrics,
		Lyrics:      StringArray{"строка"},
		Options:     StringArray{"A", "B", "C", "D"},
	}

	// Пустой ID
	q := base
	q.ID = "  "
	assert.False(t, q.IsPlayable(), "вопрос с пустым ID должен отбрасываться")

	// Меньше четырёх вариантов
	q = base
	q.Options = StringArray{"A", "B", "C"}
	assert.False(t, q.IsPlayable(), "вопрос с тремя вариантами должен отбрасываться")

	// Пустой вариант среди четырёх
	q = base
	q.Options = StringArray{"A", "", "C", "D"}
	assert.False(t, q.IsPlayable(), "вопрос с пустым вариантом должен отбрасываться")

	// Текстовый вопрос без текста
	q = base
	q.Lyrics = StringArray{}
	assert.False(t, q.IsPlayable(), "текстовый вопрос без lyrics должен отбрасываться")

	// Аудио-вопрос без URL
	q = base
	q.ContentKind = ContentKindAudio
	q.Lyrics = nil
	q.AudioURL = ""
	assert.False(t, q.IsPlayable(), "аудио-вопрос без URL должен отбрасываться")

	// Неизвестный вид контента
	q = base
	q.ContentKind = ContentKind("video")
	assert.False(t, q.IsPlayable(), "вопрос с неизвестным видом контента должен отбрасываться")
}

func TestQuestion_IsPlayable_Audio(t *testing.T) {
	// Arrange
	q := Question{
		ID:          "aud_1",
		ContentKind: ContentKindAudio,
		AudioURL:    "https://example.com/clip.mp3",
		Options:     StringArray{"A", "B", "C", "D"},
	}

	// Act & Assert
	assert.True(t, q.IsPlayable(), "полноценный аудио-вопрос должен быть пригоден")
}

func TestQuestion_MatchesType(t *testing.T) {
	song := Question{QuestionType: QuestionTypeSong}
	artist := Question{QuestionType: QuestionTypeArtist}
	both := Question{QuestionType: QuestionTypeBoth}

	// Запрос "both" принимает любую запись
	assert.True(t, song.MatchesType(QuestionTypeBoth), "запрос both должен принимать песенные записи")
	assert.True(t, artist.MatchesType(QuestionTypeBoth), "запрос both должен принимать артистные записи")

	// Запись "both" подходит под любой запрос
	assert.True(t, both.MatchesType(QuestionTypeSong), "запись both должна подходить под запрос song")
	assert.True(t, both.MatchesType(QuestionTypeArtist), "запись both должна подходить под запрос artist")

	// Узкие типы не пересекаются
	assert.True(t, song.MatchesType(QuestionTypeSong))
	assert.False(t, song.MatchesType(QuestionTypeArtist), "песенная запись не должна подходить под запрос artist")
	assert.False(t, artist.MatchesType(QuestionTypeSong), "артистная запись не должна подходить под запрос song")
}

func TestNormalizeLyrics_ArrayForm(t *testing.T) {
	// Arrange: форма 1 - JSON-массив строк
	raw := json.RawMessage(`["первая строка", "вторая строка"]`)

	// Act
	lyrics := NormalizeLyrics(raw)

	// Assert
	assert.Equal(t, StringArray{"первая строка", "вторая строка"}, lyrics)
}

func TestNormalizeLyrics_SingleStringForm(t *testing.T) {
	// Arrange: форма 2 - одиночная строка
	raw := json.RawMessage(`"единственная строка"`)

	// Act
	lyrics := NormalizeLyrics(raw)

	// Assert
	assert.Equal(t, StringArray{"единственная строка"}, lyrics, "одиночная строка должна стать массивом из одного элемента")
}

func TestNormalizeLyrics_NestedJSONForm(t *testing.T) {
	// Arrange: форма 3 - строка с JSON-закодированным массивом внутри
	raw := json.RawMessage(`"[\"раз\", \"два\"]"`)

	// Act
	lyrics := NormalizeLyrics(raw)

	// Assert
	assert.Equal(t, StringArray{"раз", "два"}, lyrics, "вложенный JSON-массив должен распаковываться")
}

func TestNormalizeLyrics_FiltersJunk(t *testing.T) {
	// Arrange: нестроковые и пустые элементы в массиве
	raw := json.RawMessage(`["строка", 42, "", "   ", null, "ещё строка"]`)

	// Act
	lyrics := NormalizeLyrics(raw)

	// Assert
	assert.Equal(t, StringArray{"строка", "ещё строка"}, lyrics, "нестроковые и пустые элементы должны отбрасываться")
}

func TestNormalizeLyrics_Empty(t *testing.T) {
	assert.Empty(t, NormalizeLyrics(nil), "nil payload должен давать пустой массив")
	assert.Empty(t, NormalizeLyrics(json.RawMessage(`""`)), "пустая строка должна давать пустой массив")
	assert.Empty(t, NormalizeLyrics(json.RawMessage(`123`)), "число должно давать пустой массив")
	assert.Empty(t, NormalizeLyrics(json.RawMessage(`{bad`)), "повреждённый JSON должен давать пустой массив")
}

func TestStringArray_ScanValue_Roundtrip(t *testing.T) {
	// Arrange
	original := StringArray{"вариант 1", "вариант 2"}

	// Act: сериализуем через Value и читаем обратно через Scan
	value, err := original.Value()
	require.NoError(t, err, "Value не должен возвращать ошибку")

	var scanned StringArray
	err = scanned.Scan(value)
	require.NoError(t, err, "Scan не должен возвращать ошибку")

	// Assert
	assert.Equal(t, original, scanned, "после round-trip массив должен совпадать")
}

func TestStringArray_Scan_Null(t *testing.T) {
	// Act
	var arr StringArray
	err := arr.Scan(nil)

	// Assert: NULL из базы становится пустым массивом
	require.NoError(t, err)
	assert.Equal(t, StringArray{}, arr, "NULL должен давать пустой массив")
}

func TestStringArray_Value_Empty(t *testing.T) {
	// Act
	value, err := StringArray{}.Value()

	// Assert: пустой массив сериализуется как [], а не null
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value, "пустой массив должен давать []")
}
