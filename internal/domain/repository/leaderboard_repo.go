package repository

import (
	"github.com/yourusername/musicquiz-api/internal/domain/entity"
)

// LeaderboardRepository определяет методы для работы с накопленными очками
type LeaderboardRepository interface {
	// GetByDeviceID возвращает запись устройства или apperrors.ErrNotFound
	GetByDeviceID(deviceID string) (*entity.LeaderboardEntry, error)

	// Save создает или полностью обновляет запись устройства
	Save(entry *entity.LeaderboardEntry) error

	// TopByColumn возвращает записи, отсортированные по убыванию очков
	// в указанной колонке категории
	TopByColumn(column string, limit int) ([]entity.LeaderboardEntry, error)

	// All возвращает все записи (для подсчёта общего рейтинга)
	All() ([]entity.LeaderboardEntry, error)
}
