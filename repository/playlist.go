package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
)

// ErrDuplicatePlaylistSong is returned when a (playlist, song) pair already
// exists.
var ErrDuplicatePlaylistSong = errors.New("song is already in the playlist")

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(playlist *entity.Playlist) error {
	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	return r.db.Create(playlist).Error
}

func (r *PlaylistRepository) FindByID(id uuid.UUID) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_items.position asc")
		}).
		Preload("Items.Song").
		Preload("Items.Song.Artists").
		Where("id = ?", id).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByUser(userID uuid.UUID) ([]entity.Playlist, error) {
	var playlists []entity.Playlist
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PlaylistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Save(playlist).Error
}

func (r *PlaylistRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&entity.PlaylistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Playlist{}, "id = ?", id).Error
	})
}

// AddSong appends a song at position max+1 (first item gets 1). Adding the
// same song twice yields ErrDuplicatePlaylistSong.
func (r *PlaylistRepository) AddSong(playlistID, songID uuid.UUID) (*entity.PlaylistItem, error) {
	var item entity.PlaylistItem

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.PlaylistItem{}).
			Where("playlist_id = ? AND song_id = ?", playlistID, songID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePlaylistSong
		}

		var maxPosition int
		if err := tx.Model(&entity.PlaylistItem{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		item = entity.PlaylistItem{
			PlaylistID: playlistID,
			SongID:     songID,
			Position:   maxPosition + 1,
		}
		return translateAddSongError(tx.Create(&item).Error)
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// translateAddSongError maps the composite-key violation raised when a
// concurrent add of the same pair slips past the duplicate check.
func translateAddSongError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePlaylistSong
	}
	return err
}

func (r *PlaylistRepository) RemoveSong(playlistID, songID uuid.UUID) error {
	result := r.db.Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Delete(&entity.PlaylistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
