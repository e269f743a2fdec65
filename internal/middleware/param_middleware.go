package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// ExtractCategoryParam создает middleware для извлечения и валидации
// категории из параметра URL. Категория проверяется по белому списку колонок
// рейтинга (включая поджанры-алиасы) и сохраняется в контексте Gin под
// ключом contextKey.
func ExtractCategoryParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param(paramName)
		if _, ok := entity.ScoreColumn(category); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown %s", paramName)})
			c.Abort()
			return
		}
		c.Set(contextKey, category)
		c.Next()
	}
}
