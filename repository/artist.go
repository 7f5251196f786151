package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(artist *entity.Artist) error {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return r.db.Create(artist).Error
}

func (r *ArtistRepository) FindByID(id uuid.UUID) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.Preload("Albums").Preload("Songs").Where("id = ?", id).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) FindByName(name string) (*entity.Artist, error) {
	var artist entity.Artist
	err := r.db.Where("name = ?", name).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

// FirstOrCreateByName resolves an artist by its unique name, creating it
// with the supplied avatar and bio when absent. A concurrent create of the
// same name loses to the uniqueness constraint and is re-read.
func (r *ArtistRepository) FirstOrCreateByName(name, avatarURL, bio string) (*entity.Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("artist name cannot be empty")
	}

	artist, err := r.FindByName(name)
	if err == nil {
		return artist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entity.Artist{
		ID:        uuid.New(),
		Name:      name,
		AvatarURL: avatarURL,
		Bio:       bio,
	}
	if err := r.db.Create(created).Error; err != nil {
		// Lost the race on the unique name; the winner's row is the answer.
		if existing, findErr := r.FindByName(name); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return created, nil
}

func (r *ArtistRepository) List(page, limit int) ([]entity.Artist, int64, error) {
	var artists []entity.Artist
	var total int64

	if err := r.db.Model(&entity.Artist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&artists).Error
	if err != nil {
		return nil, 0, err
	}

	return artists, total, nil
}

func (r *ArtistRepository) Update(artist *entity.Artist) error {
	return r.db.Save(artist).Error
}

// Delete removes an artist, its albums and its song memberships. Songs are
// deleted only when this artist was their last remaining one; multi-artist
// songs just lose the association.
func (r *ArtistRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var artist entity.Artist
		if err := tx.Where("id = ?", id).First(&artist).Error; err != nil {
			return err
		}

		var songIDs []uuid.UUID
		if err := tx.Table("song_artists").
			Where("artist_id = ?", id).
			Pluck("song_id", &songIDs).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM song_artists WHERE artist_id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Where("artist_id = ?", id).Delete(&entity.Album{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entity.Artist{}, "id = ?", id).Error; err != nil {
			return err
		}

		if len(songIDs) == 0 {
			return nil
		}

		// Songs left with no artist at all are removed with their playlist
		// memberships and history rows.
		var orphanIDs []uuid.UUID
		if err := tx.Model(&entity.Song{}).
			Where("id IN ?", songIDs).
			Where("NOT EXISTS (SELECT 1 FROM song_artists sa WHERE sa.song_id = songs.id)").
			Pluck("id", &orphanIDs).Error; err != nil {
			return err
		}
		if len(orphanIDs) == 0 {
			return nil
		}

		if err := tx.Where("song_id IN ?", orphanIDs).Delete(&entity.PlaylistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id IN ?", orphanIDs).Delete(&entity.PlayHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Song{}, "id IN ?", orphanIDs).Error
	})
}
