package repository

import (
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/infra"
)

type Repository struct {
	UserRepo     *UserRepository
	ArtistRepo   *ArtistRepository
	AlbumRepo    *AlbumRepository
	SongRepo     *SongRepository
	PlaylistRepo *PlaylistRepository
	HistoryRepo  *HistoryRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = NewRepository(infra.Postgres.DB)
	return repository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		UserRepo:     NewUserRepository(db),
		ArtistRepo:   NewArtistRepository(db),
		AlbumRepo:    NewAlbumRepository(db),
		SongRepo:     NewSongRepository(db),
		PlaylistRepo: NewPlaylistRepository(db),
		HistoryRepo:  NewHistoryRepository(db),
	}
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
