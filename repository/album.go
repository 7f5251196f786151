package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(album *entity.Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	return r.db.Create(album).Error
}

func (r *AlbumRepository) FindByID(id uuid.UUID) (*entity.Album, error) {
	var album entity.Album
	err := r.db.Preload("Artist").Preload("Songs").Preload("Songs.Artists").
		Where("id = ?", id).First(&album).Error
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) List(page, limit int) ([]entity.Album, int64, error) {
	var albums []entity.Album
	var total int64

	if err := r.db.Model(&entity.Album{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Artist").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&albums).Error
	if err != nil {
		return nil, 0, err
	}

	return albums, total, nil
}

func (r *AlbumRepository) Update(album *entity.Album) error {
	return r.db.Save(album).Error
}

func (r *AlbumRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Song{}).
			Where("album_id = ?", id).
			Update("album_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Album{}, "id = ?", id).Error
	})
}
