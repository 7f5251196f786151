package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlayHistory is an append-only log of playback events.
type PlayHistory struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	SongID   uuid.UUID `json:"song_id" gorm:"type:uuid;not null;index"`
	PlayedAt time.Time `json:"played_at" gorm:"not null;autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Song *Song `json:"song,omitempty" gorm:"foreignKey:SongID;constraint:OnDelete:CASCADE"`
}
