package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// fakeKV - потокобезопасное in-memory хранилище для тестов.
// Флаги fail* симулируют недоступность хранилища.
type fakeKV struct {
	mu         sync.Mutex
	store      map[string]string
	failGet    bool
	failSet    bool
	failDelete bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{store: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("kv: соединение потеряно")
	}
	v, ok := f.store[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return errors.New("kv: соединение потеряно")
	}
	f.store[key] = value
	return nil
}

func (f *fakeKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errors.New("kv: соединение потеряно")
	}
	delete(f.store, key)
	return nil
}

// stubSource - удалённый источник с фиксированным ответом или ошибкой
type stubSource struct {
	questions []entity.Question
	err       error
	calls     int
}

func (s *stubSource) FetchAll(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind) ([]entity.Question, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

// stubStatic - статический набор с фиксированным пулом
type stubStatic struct {
	questions []entity.Question
}

func (s *stubStatic) Questions(category string, questionType entity.QuestionType, kind entity.ContentKind) []entity.Question {
	return s.questions
}

// makeQuestions генерирует n пригодных текстовых вопросов с ID prefix_1..n
func makeQuestions(prefix string, n int) []entity.Question {
	out := make([]entity.Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.Question{
			ID:           fmt.Sprintf("%s_%d", prefix, i),
			ContentKind:  entity.ContentKindLyrics,
			QuestionType: entity.QuestionTypeSong,
			Lyrics:       entity.StringArray{"строка текста"},
			Options:      entity.StringArray{"A", "B", "C", "D"},
			Category:     "gospel",
		})
	}
	return out
}

// ids собирает ID батча в множество
func ids(batch []entity.Question) map[string]struct{} {
	set := make(map[string]struct{}, len(batch))
	for i := range batch {
		set[batch[i].ID] = struct{}{}
	}
	return set
}
