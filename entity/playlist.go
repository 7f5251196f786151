package entity

import (
	"time"

	"github.com/google/uuid"
)

type Playlist struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CoverURL    *string   `json:"cover_url,omitempty" gorm:"type:varchar(1024)"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User  *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items []PlaylistItem `json:"items,omitempty" gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE"`
}

// PlaylistItem orders songs inside a playlist. The (playlist, song) pair is
// unique; Position is an ordering hint, gaps are tolerated.
type PlaylistItem struct {
	PlaylistID uuid.UUID `json:"playlist_id" gorm:"type:uuid;primaryKey"`
	SongID     uuid.UUID `json:"song_id" gorm:"type:uuid;primaryKey"`
	Position   int       `json:"position" gorm:"not null"`
	AddedAt    time.Time `json:"added_at" gorm:"not null;autoCreateTime"`

	Song *Song `json:"song,omitempty" gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}
