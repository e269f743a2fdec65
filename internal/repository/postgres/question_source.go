package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// Имена таблиц контента. "Песенные" и "артистные" вопросы живут в разных
// таблицах; тип "both" объединяет обе.
const (
	tableLyricsSong   = "lyrics_questions"
	tableLyricsArtist = "artist_lyrics"
	tableAudioSong    = "audio_questions"
	tableAudioArtist  = "artist_audio"
)

// questionRow - сырая строка таблицы контента до нормализации.
// Lyrics оставляем как json.RawMessage: источник может прислать массив,
// одиночную строку или JSON-закодированную строку (см. entity.NormalizeLyrics).
type questionRow struct {
	ID            string          `gorm:"column:id"`
	ClipID        string          `gorm:"column:clip_id"`
	AudioURL      string          `gorm:"column:audio_url"`
	Lyrics        json.RawMessage `gorm:"column:lyrics"`
	QuestionType  string          `gorm:"column:question_type"`
	CorrectAnswer string          `gorm:"column:correct_answer"`
	OptionA       string          `gorm:"column:option_a"`
	OptionB       string          `gorm:"column:option_b"`
	OptionC       string          `gorm:"column:option_c"`
	OptionD       string          `gorm:"column:option_d"`
	SongTitle     string          `gorm:"column:song_title"`
	ArtistName    string          `gorm:"column:artist_name"`
	Category      string          `gorm:"column:category"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

// QuestionSourceRepo реализует repository.QuestionSource поверх PostgreSQL
type QuestionSourceRepo struct {
	db *gorm.DB
}

// NewQuestionSourceRepo создает новый источник вопросов
func NewQuestionSourceRepo(db *gorm.DB) *QuestionSourceRepo {
	return &QuestionSourceRepo{db: db}
}

// FetchAll возвращает полный набор записей категории для заданного вида
// контента и типа вопроса. Для "both" опрашиваются обе таблицы и результаты
// конкатенируются; дедупликация не выполняется.
func (r *QuestionSourceRepo) FetchAll(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind) ([]entity.Question, error) {
	tables, err := contentTables(questionType, kind)
	if err != nil {
		return nil, err
	}

	var questions []entity.Question
	for _, table := range tables {
		var rows []questionRow
		err := r.db.WithContext(ctx).
			Table(table).
			Where("category = ?", category).
			Order("created_at desc").
			Find(&rows).Error
		if err != nil {
			// Частичных результатов не бывает: любая ошибка запроса - ошибка всего фетча
			return nil, wrapFetchErr(table, err)
		}
		for i := range rows {
			questions = append(questions, normalizeRow(&rows[i], kind))
		}
	}

	return questions, nil
}

// wrapFetchErr помечает ошибку запроса как недоступность источника:
// вызывающий код различает её по apperrors.ErrUnavailable и переходит на fallback
func wrapFetchErr(table string, err error) error {
	return fmt.Errorf("failed to fetch questions from %s: %w: %w", table, apperrors.ErrUnavailable, err)
}

// contentTables возвращает список таблиц для пары (тип вопроса, вид контента)
func contentTables(questionType entity.QuestionType, kind entity.ContentKind) ([]string, error) {
	var song, artist string
	switch kind {
	case entity.ContentKindLyrics:
		song, artist = tableLyricsSong, tableLyricsArtist
	case entity.ContentKindAudio:
		song, artist = tableAudioSong, tableAudioArtist
	default:
		return nil, fmt.Errorf("unknown content kind: %q", kind)
	}

	switch questionType {
	case entity.QuestionTypeSong:
		return []string{song}, nil
	case entity.QuestionTypeArtist:
		return []string{artist}, nil
	case entity.QuestionTypeBoth:
		return []string{song, artist}, nil
	default:
		return nil, fmt.Errorf("unknown question type: %q", questionType)
	}
}

// normalizeRow преобразует сырую строку таблицы в нормализованный вопрос.
// Буквенный код ответа превращается в индекс, payload текста песни приводится
// к массиву строк. Валидность записи здесь не проверяется - этим занимается
// селектор перед перемешиванием.
func normalizeRow(row *questionRow, kind entity.ContentKind) entity.Question {
	q := entity.Question{
		ID:            row.ID,
		ContentKind:   kind,
		QuestionType:  entity.QuestionType(row.QuestionType),
		CorrectOption: entity.ParseAnswerLetter(row.CorrectAnswer),
		Options:       entity.StringArray{row.OptionA, row.OptionB, row.OptionC, row.OptionD},
		SongTitle:     row.SongTitle,
		ArtistName:    row.ArtistName,
		Category:      row.Category,
	}
	switch kind {
	case entity.ContentKindAudio:
		q.AudioURL = row.AudioURL
	case entity.ContentKindLyrics:
		q.Lyrics = entity.NormalizeLyrics(row.Lyrics)
	}
	return q
}
