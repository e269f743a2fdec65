package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	"github.com/yourusername/musicquiz-api/internal/service/selection"
)

// QuestionHandler обрабатывает запросы батчей вопросов
type QuestionHandler struct {
	selector *selection.Selector
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(selector *selection.Selector) *QuestionHandler {
	return &QuestionHandler{selector: selector}
}

// QuestionsQuery представляет параметры запроса батча вопросов
type QuestionsQuery struct {
	Category string `form:"category" binding:"required"`
	Type     string `form:"type" binding:"omitempty,oneof=song artist both"`
	Kind     string `form:"kind" binding:"omitempty,oneof=audio lyrics"`
	Limit    int    `form:"limit" binding:"omitempty,min=1"`
}

// GetQuestions возвращает батч вопросов для игровой сессии.
// Селектор не возвращает ошибок: в худшем случае батч меньше запрошенного
// или собран из встроенного набора. Пустой ответ означает, что категория
// недоступна - клиент решает, что показать.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var q QuestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !selection.IsKnownCategory(q.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	questionType := entity.QuestionType(q.Type)
	if q.Type == "" {
		questionType = entity.QuestionTypeBoth
	}
	kind := entity.ContentKind(q.Kind)
	if q.Kind == "" {
		kind = entity.ContentKindLyrics
	}

	// Потолок размера батча применяется здесь, на стороне вызывающего
	limit := q.Limit
	if limit <= 0 {
		limit = selection.DefaultBatchSize
	}
	if limit > selection.MaxBatchSize {
		limit = selection.MaxBatchSize
	}

	questions := h.selector.SelectBatch(c.Request.Context(), q.Category, questionType, kind, limit)

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"count":     len(questions),
	})
}
