package entity

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Bio       string    `json:"bio" gorm:"type:text"`
	AvatarURL string    `json:"avatar_url" gorm:"type:varchar(1024)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Albums []Album `json:"albums,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
	Songs  []Song  `json:"songs,omitempty" gorm:"many2many:song_artists;constraint:OnDelete:CASCADE"`
}
