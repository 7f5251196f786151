package dto

import "github.com/google/uuid"

type CreateArtistRequestDTO struct {
	Name      string `json:"name" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateArtistRequestDTO struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

type CreateAlbumRequestDTO struct {
	Title       string    `json:"title" binding:"required"`
	ArtistID    uuid.UUID `json:"artist_id" binding:"required"`
	ReleaseYear int       `json:"release_year"`
	CoverURL    string    `json:"cover_url"`
}

type UpdateAlbumRequestDTO struct {
	Title       *string `json:"title"`
	ReleaseYear *int    `json:"release_year"`
	CoverURL    *string `json:"cover_url"`
}

// ListResponseDTO wraps paginated collections.
type ListResponseDTO struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
