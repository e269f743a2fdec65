package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/musicquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/musicquiz-api/internal/pkg/errors"
)

// LeaderboardRepo реализует repository.LeaderboardRepository
type LeaderboardRepo struct {
	db *gorm.DB
}

// NewLeaderboardRepo создает новый репозиторий лидерборда
func NewLeaderboardRepo(db *gorm.DB) *LeaderboardRepo {
	return &LeaderboardRepo{db: db}
}

// GetByDeviceID возвращает запись устройства по его идентификатору
func (r *LeaderboardRepo) GetByDeviceID(deviceID string) (*entity.LeaderboardEntry, error) {
	var entry entity.LeaderboardEntry
	err := r.db.Where("device_id = ?", deviceID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Save создает или обновляет запись устройства
func (r *LeaderboardRepo) Save(entry *entity.LeaderboardEntry) error {
	return r.db.Save(entry).Error
}

// TopByColumn возвращает записи с ненулевыми очками категории,
// отсортированные по убыванию
func (r *LeaderboardRepo) TopByColumn(column string, limit int) ([]entity.LeaderboardEntry, error) {
	// column приходит только из entity.ScoreColumn - белого списка колонок
	var entries []entity.LeaderboardEntry
	err := r.db.
		Where(fmt.Sprintf("%s > 0", column)).
		Order(fmt.Sprintf("%s desc", column)).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// All возвращает все записи лидерборда
func (r *LeaderboardRepo) All() ([]entity.LeaderboardEntry, error) {
	var entries []entity.LeaderboardEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
