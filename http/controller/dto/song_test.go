package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUpdateSongValidate(t *testing.T) {
	ok := UpdateSongRequestDTO{ArtistIDs: []uuid.UUID{uuid.New()}}
	assert.NoError(t, ok.Validate())

	ok = UpdateSongRequestDTO{ArtistNames: []string{"Tulus"}}
	assert.NoError(t, ok.Validate())

	ok = UpdateSongRequestDTO{}
	assert.NoError(t, ok.Validate())

	bad := UpdateSongRequestDTO{
		ArtistIDs:   []uuid.UUID{uuid.New()},
		ArtistNames: []string{"Tulus"},
	}
	assert.Error(t, bad.Validate())
}

func TestCreateSongValidate(t *testing.T) {
	ok := CreateSongRequestDTO{Title: "Gajah", AudioKey: "audio/x.mp3", ArtistNames: []string{"Tulus"}}
	assert.NoError(t, ok.Validate())

	both := CreateSongRequestDTO{
		Title:       "Gajah",
		AudioKey:    "audio/x.mp3",
		ArtistIDs:   []uuid.UUID{uuid.New()},
		ArtistNames: []string{"Tulus"},
	}
	assert.Error(t, both.Validate())

	neither := CreateSongRequestDTO{Title: "Gajah", AudioKey: "audio/x.mp3"}
	assert.Error(t, neither.Validate())
}
