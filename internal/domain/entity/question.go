package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// ContentKind определяет вид контента вопроса: аудио-фрагмент или строки текста песни
type ContentKind string

const (
	ContentKindAudio  ContentKind = "audio"
	ContentKindLyrics ContentKind = "lyrics"
)

// IsValid проверяет, что вид контента известен
func (k ContentKind) IsValid() bool {
	return k == ContentKindAudio || k == ContentKindLyrics
}

// QuestionType определяет, что спрашивается: название песни, исполнитель или и то, и другое
type QuestionType string

const (
	QuestionTypeSong   QuestionType = "song"
	QuestionTypeArtist QuestionType = "artist"
	QuestionTypeBoth   QuestionType = "both"
)

// IsValid проверяет, что тип вопроса известен
func (t QuestionType) IsValid() bool {
	return t == QuestionTypeSong || t == QuestionTypeArtist || t == QuestionTypeBoth
}

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// OptionCount - количество вариантов ответа в каждом вопросе
const OptionCount = 4

// Question представляет нормализованный вопрос викторины.
// Это единая форма для обоих видов контента: для аудио-вопросов заполнен
// AudioURL, для текстовых - Lyrics.
type Question struct {
	ID            string       `json:"id"`
	ContentKind   ContentKind  `json:"content_kind"`
	QuestionType  QuestionType `json:"question_type"`
	AudioURL      string       `json:"audio_url,omitempty"`
	Lyrics        StringArray  `json:"lyrics,omitempty"`
	Options       StringArray  `json:"options"`
	CorrectOption int          `json:"correct_option"`
	SongTitle     string       `json:"song_title,omitempty"`
	ArtistName    string       `json:"artist_name,omitempty"`
	Category      string       `json:"category"`
}

// IsPlayable проверяет, пригоден ли вопрос для игры:
// непустой ID, ровно 4 непустых варианта ответа и заполненное поле контента.
// Непригодные записи отбрасываются до перемешивания.
func (q *Question) IsPlayable() bool {
	if strings.TrimSpace(q.ID) == "" {
		return false
	}
	if len(q.Options) != OptionCount {
		return false
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return false
		}
	}
	switch q.ContentKind {
	case ContentKindAudio:
		return q.AudioURL != ""
	case ContentKindLyrics:
		return len(q.Lyrics) > 0
	default:
		return false
	}
}

// MatchesType проверяет, подходит ли вопрос под запрошенный тип.
// Запись с типом "both" подходит под любой запрос; запрос "both"
// принимает записи любого типа.
func (q *Question) MatchesType(t QuestionType) bool {
	return t == QuestionTypeBoth || q.QuestionType == t || q.QuestionType == QuestionTypeBoth
}

// ParseAnswerLetter преобразует буквенный код правильного ответа (A-D)
// в индекс 0-3. Неразборчивые значения деградируют к индексу 0, а не к ошибке.
func ParseAnswerLetter(letter string) int {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	case "D":
		return 3
	default:
		return 0
	}
}

// NormalizeLyrics приводит сырой payload текста песни к каноническому виду.
// Источник может вернуть его в трёх формах: JSON-массив строк, одиночная
// строка или строка с JSON-закодированным массивом внутри. Нестроковые и
// пустые элементы отбрасываются. Результат - единственная форма, которую
// видит весь остальной код.
func NormalizeLyrics(raw json.RawMessage) StringArray {
	if len(raw) == 0 {
		return StringArray{}
	}

	// Форма 1: массив строк
	var lines []interface{}
	if err := json.Unmarshal(raw, &lines); err == nil {
		return filterLines(lines)
	}

	// Форма 2 и 3: одиночная строка, возможно содержащая JSON-массив
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		single = strings.TrimSpace(single)
		if single == "" {
			return StringArray{}
		}
		if strings.HasPrefix(single, "[") {
			var nested []interface{}
			if err := json.Unmarshal([]byte(single), &nested); err == nil {
				return filterLines(nested)
			}
		}
		return StringArray{single}
	}

	return StringArray{}
}

func filterLines(lines []interface{}) StringArray {
	out := StringArray{}
	for _, l := range lines {
		s, ok := l.(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
