package entity

import (
	"time"
)

// LeaderboardEntry представляет накопленные очки одного устройства по категориям.
// Одна строка на device_id; очки категории только прибавляются, никогда не
// перезаписываются.
type LeaderboardEntry struct {
	DeviceID       string    `gorm:"primaryKey;size:64" json:"device_id"`
	Username       string    `gorm:"size:50" json:"username,omitempty"`
	AfrobeatsScore int       `gorm:"not null;default:0" json:"afrobeats_score"`
	GospelScore    int       `gorm:"not null;default:0" json:"gospel_score"`
	HighlifeScore  int       `gorm:"not null;default:0" json:"highlife_score"`
	ThrowbackScore int       `gorm:"not null;default:0" json:"throwback_score"`
	BluesScore     int       `gorm:"not null;default:0" json:"blues_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (LeaderboardEntry) TableName() string {
	return "leaderboard_data"
}

// TotalScore возвращает сумму очков по всем категориям
func (e *LeaderboardEntry) TotalScore() int {
	return e.AfrobeatsScore + e.GospelScore + e.HighlifeScore + e.ThrowbackScore + e.BluesScore
}

// AddScore прибавляет очки к счёту категории по имени её колонки
func (e *LeaderboardEntry) AddScore(column string, points int) {
	switch column {
	case "afrobeats_score":
		e.AfrobeatsScore += points
	case "gospel_score":
		e.GospelScore += points
	case "highlife_score":
		e.HighlifeScore += points
	case "throwback_score":
		e.ThrowbackScore += points
	case "blues_score":
		e.BluesScore += points
	}
}

// scoreColumns сопоставляет категории (включая узкие поджанры) с колонками
// накопленных очков в leaderboard_data
var scoreColumns = map[string]string{
	"afrobeats":        "afrobeats_score",
	"gospel":           "gospel_score",
	"highlife":         "highlife_score",
	"throwback":        "throwback_score",
	"blues":            "blues_score",
	"blues-foreign":    "blues_score",
	"juju":             "highlife_score",
	"nigerian-gospel":  "gospel_score",
	"nigerian-hip-hop": "afrobeats_score",
	"nigerian-r&b":     "blues_score",
	"nigerian-folk":    "throwback_score",
}

// ScoreColumn возвращает имя колонки очков для категории.
// Вторым значением возвращается false для неизвестной категории.
func ScoreColumn(category string) (string, bool) {
	col, ok := scoreColumns[category]
	return col, ok
}
