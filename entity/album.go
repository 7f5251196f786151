package entity

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(512);not null"`
	ReleaseYear int       `json:"release_year"`
	CoverURL    string    `json:"cover_url" gorm:"type:varchar(1024)"`
	ArtistID    uuid.UUID `json:"artist_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
	Songs  []Song  `json:"songs,omitempty" gorm:"foreignKey:AlbumID"`
}
