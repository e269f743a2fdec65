package service

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	"github.com/yourusername/musicquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// DefaultLeaderboardLimit - размер топа по умолчанию
const DefaultLeaderboardLimit = 50

// LeaderboardService предоставляет методы накопительного рейтинга:
// одна запись на устройство, очки категорий только прибавляются
type LeaderboardService struct {
	repo repository.LeaderboardRepository
}

// NewLeaderboardService создает новый сервис лидерборда
func NewLeaderboardService(repo repository.LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// IssueDeviceID выдает новый непрозрачный идентификатор устройства
func (s *LeaderboardService) IssueDeviceID() string {
	return "nbq_" + uuid.NewString()
}

// SubmitScore прибавляет очки к накопленному счёту категории устройства.
// Имя пользователя прикрепляется к записи, если его ещё нет; существующее
// имя не перезаписывается.
func (s *LeaderboardService) SubmitScore(deviceID, category string, score int, username string) error {
	if deviceID == "" {
		return fmt.Errorf("%w: device id is required", apperrors.ErrValidation)
	}
	if score < 0 {
		return fmt.Errorf("%w: score must be non-negative", apperrors.ErrValidation)
	}
	column, ok := entity.ScoreColumn(category)
	if !ok {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}

	entry, err := s.repo.GetByDeviceID(deviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to load leaderboard entry: %w", err)
		}
		entry = &entity.LeaderboardEntry{DeviceID: deviceID}
	}

	prev := entry.TotalScore()
	entry.AddScore(column, score)
	if username != "" && entry.Username == "" {
		entry.Username = username
	}

	if err := s.repo.Save(entry); err != nil {
		return fmt.Errorf("failed to save leaderboard entry: %w", err)
	}

	log.Printf("[Leaderboard] Устройство %s: %s +%d (итого %d -> %d)",
		deviceID, category, score, prev, entry.TotalScore())
	return nil
}

// CategoryTop возвращает топ устройств по накопленным очкам категории
func (s *LeaderboardService) CategoryTop(category string, limit int) ([]entity.LeaderboardEntry, error) {
	column, ok := entity.ScoreColumn(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return s.repo.TopByColumn(column, limit)
}

// OverallRow - запись общего рейтинга с посчитанной суммой
type OverallRow struct {
	entity.LeaderboardEntry
	Total int `json:"total_score"`
}

// OverallTop возвращает топ устройств по сумме очков всех категорий
func (s *LeaderboardService) OverallTop(limit int) ([]OverallRow, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries, err := s.repo.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	rows := make([]OverallRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, OverallRow{LeaderboardEntry: e, Total: e.TotalScore()})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
