package dto

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateSongRequestDTO creates a catalog row for audio already uploaded
// through a signed URL. Artists come either by catalog id or by name.
type CreateSongRequestDTO struct {
	Title       string      `json:"title" binding:"required"`
	AudioKey    string      `json:"audio_key" binding:"required"`
	Duration    int         `json:"duration"`
	CoverURL    *string     `json:"cover_url"`
	TrackNumber *int        `json:"track_number"`
	Genre       *string     `json:"genre"`
	Lyrics      *string     `json:"lyrics"`
	AlbumID     *uuid.UUID  `json:"album_id"`
	ArtistIDs   []uuid.UUID `json:"artist_ids"`
	ArtistNames []string    `json:"artist_names"`
}

func (r *CreateSongRequestDTO) Validate() error {
	if len(r.ArtistIDs) > 0 && len(r.ArtistNames) > 0 {
		return errors.New("artist_ids and artist_names are mutually exclusive")
	}
	if len(r.ArtistIDs) == 0 && len(r.ArtistNames) == 0 {
		return errors.New("song needs at least one artist")
	}
	return nil
}

// UpdateSongRequestDTO patches song metadata. Artist connections may be
// replaced either by catalog id or by name, never both in one request.
type UpdateSongRequestDTO struct {
	Title        *string        `json:"title"`
	Genre        *string        `json:"genre"`
	Lyrics       *string        `json:"lyrics"`
	SyncedLyrics datatypes.JSON `json:"synced_lyrics"`
	Moods        datatypes.JSON `json:"moods"`
	CoverURL     *string        `json:"cover_url"`
	TrackNumber  *int           `json:"track_number"`
	AlbumID      *uuid.UUID     `json:"album_id"`
	ArtistIDs    []uuid.UUID    `json:"artist_ids"`
	ArtistNames  []string       `json:"artist_names"`
}

func (r *UpdateSongRequestDTO) Validate() error {
	if len(r.ArtistIDs) > 0 && len(r.ArtistNames) > 0 {
		return errors.New("artist_ids and artist_names are mutually exclusive")
	}
	return nil
}

type IngestRequestDTO struct {
	SourceType  string      `json:"source_type" binding:"required,oneof=video track"`
	SourceURL   string      `json:"source_url" binding:"required"`
	Title       string      `json:"title"`
	ArtistIDs   []uuid.UUID `json:"artist_ids"`
	ArtistNames []string    `json:"artist_names"`
	AlbumID     *uuid.UUID  `json:"album_id"`
	Genre       *string     `json:"genre"`
}

type SignUploadRequestDTO struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
	Folder      string `json:"folder"`
}

type SignUploadResponseDTO struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	ExpiresIn int    `json:"expires_in"`
}

type StreamResponseDTO struct {
	StreamURL string `json:"stream_url"`
	ExpiresIn int    `json:"expires_in"`
}
