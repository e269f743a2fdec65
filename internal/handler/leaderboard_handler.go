package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
	"github.com/yourusername/musicquiz-api/internal/service"
)

// LeaderboardHandler обрабатывает запросы рейтинга и выдачу device ID
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler создает новый обработчик лидерборда
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// SubmitScoreRequest представляет запрос на зачисление очков
type SubmitScoreRequest struct {
	DeviceID string `json:"device_id" binding:"required,min=4,max=64"`
	Category string `json:"category" binding:"required"`
	Score    int    `json:"score" binding:"min=0"`
	Username string `json:"username" binding:"omitempty,max=50"`
}

// SubmitScore прибавляет очки к накопленному счёту категории
func (h *LeaderboardHandler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.leaderboardService.SubmitScore(req.DeviceID, req.Category, req.Score, req.Username); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[LeaderboardHandler] Ошибка при зачислении очков: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetCategoryLeaderboard возвращает топ категории
func (h *LeaderboardHandler) GetCategoryLeaderboard(c *gin.Context) {
	category := c.MustGet("category").(string) // Устанавливается middleware

	entries, err := h.leaderboardService.CategoryTop(category, parseLimit(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[LeaderboardHandler] Ошибка при получении топа категории %s: %v", category, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// GetOverallLeaderboard возвращает общий топ по сумме категорий
func (h *LeaderboardHandler) GetOverallLeaderboard(c *gin.Context) {
	rows, err := h.leaderboardService.OverallTop(parseLimit(c))
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка при получении общего топа: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": rows})
}

// RegisterDevice выдает новый device ID для клиентов, у которых его ещё нет
func (h *LeaderboardHandler) RegisterDevice(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"device_id": h.leaderboardService.IssueDeviceID()})
}

// parseLimit извлекает limit из query, 0 означает дефолт сервиса
func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
