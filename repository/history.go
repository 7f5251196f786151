package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(userID, songID uuid.UUID, playedAt time.Time) error {
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	return r.db.Create(&entity.PlayHistory{
		ID:       uuid.New(),
		UserID:   userID,
		SongID:   songID,
		PlayedAt: playedAt,
	}).Error
}

func (r *HistoryRepository) ListByUser(userID uuid.UUID, limit int) ([]entity.PlayHistory, error) {
	var rows []entity.PlayHistory
	err := r.db.Preload("Song").Preload("Song.Artists").
		Where("user_id = ?", userID).
		Order("played_at desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
