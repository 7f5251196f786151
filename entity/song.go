package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Song struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"type:varchar(512);not null"`
	Duration int       `json:"duration" gorm:"not null"` // seconds
	// AudioKey is the object-storage key of the audio blob. The row is
	// authoritative; blob existence is verified only on demand.
	AudioKey     string         `json:"audio_key" gorm:"type:varchar(1024);not null"`
	CoverURL     *string        `json:"cover_url,omitempty" gorm:"type:varchar(1024)"`
	TrackNumber  *int           `json:"track_number,omitempty"`
	Genre        *string        `json:"genre,omitempty" gorm:"type:varchar(255)"`
	Lyrics       *string        `json:"lyrics,omitempty" gorm:"type:text"`
	SyncedLyrics datatypes.JSON `json:"synced_lyrics,omitempty" gorm:"type:jsonb"`
	Moods        datatypes.JSON `json:"moods,omitempty" gorm:"type:jsonb"`
	PlayCount    int64          `json:"play_count" gorm:"not null;default:0"`
	AlbumID      *uuid.UUID     `json:"album_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	Album   *Album   `json:"album,omitempty" gorm:"foreignKey:AlbumID;constraint:OnDelete:SET NULL"`
	Artists []Artist `json:"artists,omitempty" gorm:"many2many:song_artists;constraint:OnDelete:CASCADE"`
}
