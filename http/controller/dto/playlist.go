package dto

import "github.com/google/uuid"

type CreatePlaylistRequestDTO struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

type UpdatePlaylistRequestDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
}

type AddPlaylistSongRequestDTO struct {
	SongID uuid.UUID `json:"song_id" binding:"required"`
}
