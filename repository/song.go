package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
)

type SongRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Create persists the song and its artist connections in one call.
func (r *SongRepository) Create(song *entity.Song, artists []entity.Artist) error {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Artists").Create(song).Error; err != nil {
			return err
		}
		if len(artists) == 0 {
			return nil
		}
		return tx.Model(song).Association("Artists").Append(artists)
	})
}

func (r *SongRepository) FindByID(id uuid.UUID) (*entity.Song, error) {
	var song entity.Song
	err := r.db.Preload("Artists").Preload("Album").Where("id = ?", id).First(&song).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (r *SongRepository) List(page, limit int) ([]entity.Song, int64, error) {
	var songs []entity.Song
	var total int64

	if err := r.db.Model(&entity.Song{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Artists").Preload("Album").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&songs).Error
	if err != nil {
		return nil, 0, err
	}

	return songs, total, nil
}

// Featured returns a random selection for the home feed.
func (r *SongRepository) Featured(limit int) ([]entity.Song, error) {
	var songs []entity.Song
	err := r.db.Preload("Artists").
		Order("RANDOM()").
		Limit(limit).
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// Trending returns the most played songs.
func (r *SongRepository) Trending(limit int) ([]entity.Song, error) {
	var songs []entity.Song
	err := r.db.Preload("Artists").
		Order("play_count desc").
		Limit(limit).
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *SongRepository) Update(song *entity.Song) error {
	return r.db.Omit("Artists").Save(song).Error
}

// ReplaceArtists swaps the song's artist connections.
func (r *SongRepository) ReplaceArtists(song *entity.Song, artists []entity.Artist) error {
	return r.db.Model(song).Association("Artists").Replace(artists)
}

func (r *SongRepository) IncrementPlayCount(id uuid.UUID) error {
	return r.db.Model(&entity.Song{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + 1")).Error
}

// Delete removes the song with its playlist memberships and history rows.
// The stored blob is cleaned up separately, best-effort.
func (r *SongRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("song_id = ?", id).Delete(&entity.PlaylistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", id).Delete(&entity.PlayHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM song_artists WHERE song_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Song{}, "id = ?", id).Error
	})
}
