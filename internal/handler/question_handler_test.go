package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
	"github.com/yourusername/musicquiz-api/internal/service/selection"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов GET-запроса с query string
func newTestGinContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// stubQuestionSource - источник с фиксированным набором вопросов
type stubQuestionSource struct {
	questions []entity.Question
}

func (s *stubQuestionSource) FetchAll(ctx context.Context, category string, questionType entity.QuestionType, kind entity.ContentKind) ([]entity.Question, error) {
	return s.questions, nil
}

// memKV - in-memory key-value хранилище для тестов обработчика
type memKV struct {
	store map[string]string
}

func newMemKV() *memKV {
	return &memKV{store: make(map[string]string)}
}

func (m *memKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.store[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.store[key] = value
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

// emptyStatic - статический набор без контента
type emptyStatic struct{}

func (emptyStatic) Questions(category string, questionType entity.QuestionType, kind entity.ContentKind) []entity.Question {
	return nil
}

// newHandlerSelector собирает селектор над стабами для тестов обработчика
func newHandlerSelector(pool int) *selection.Selector {
	questions := make([]entity.Question, 0, pool)
	for i := 1; i <= pool; i++ {
		questions = append(questions, entity.Question{
			ID:           fmt.Sprintf("q_%d", i),
			ContentKind:  entity.ContentKindLyrics,
			QuestionType: entity.QuestionTypeSong,
			Lyrics:       entity.StringArray{"строка текста"},
			Options:      entity.StringArray{"A", "B", "C", "D"},
			Category:     "gospel",
		})
	}
	return selection.NewSelector(&selection.Dependencies{
		Source: &stubQuestionSource{questions: questions},
		KV:     newMemKV(),
		Static: emptyStatic{},
	})
}

// ============================================================================
// Request validation tests - не требуют реального селектора
// Handler возвращает 400 до обращения к селектору
// ============================================================================

func TestGetQuestions_ValidationErrors(t *testing.T) {
	handler := &QuestionHandler{} // nil selector - OK для validation tests

	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "missing category",
			query: "",
		},
		{
			name:  "unknown category",
			query: "?category=jazz",
		},
		{
			name:  "invalid type",
			query: "?category=gospel&type=album",
		},
		{
			name:  "invalid kind",
			query: "?category=gospel&kind=video",
		},
		{
			name:  "negative limit",
			query: "?category=gospel&limit=-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			c, w := newTestGinContext(http.MethodGet, "/api/questions"+tt.query)

			// Act
			handler.GetQuestions(c)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code, "невалидный запрос должен давать 400")
			resp := parseJSONResponse(t, w)
			assert.Contains(t, resp, "error", "ответ должен содержать поле error")
		})
	}
}

func TestGetQuestions_ZeroLimitUsesDefault(t *testing.T) {
	// Arrange: limit=0 - нулевое значение, которое binding пропускает;
	// обработчик трактует его как размер батча по умолчанию
	handler := NewQuestionHandler(newHandlerSelector(30))
	c, w := newTestGinContext(http.MethodGet, "/api/questions?category=gospel&type=song&limit=0")

	// Act
	handler.GetQuestions(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code, "limit=0 должен обслуживаться, а не отклоняться")
	resp := parseJSONResponse(t, w)
	assert.EqualValues(t, selection.DefaultBatchSize, resp["count"], "limit=0 должен давать батч размера по умолчанию")
}

func TestGetQuestions_LimitClampedToMax(t *testing.T) {
	// Arrange
	handler := NewQuestionHandler(newHandlerSelector(50))
	c, w := newTestGinContext(http.MethodGet, "/api/questions?category=gospel&type=song&limit=100")

	// Act
	handler.GetQuestions(c)

	// Assert: потолок размера батча применяется на стороне обработчика
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.EqualValues(t, selection.MaxBatchSize, resp["count"], "limit выше потолка должен обрезаться до максимума")
}
