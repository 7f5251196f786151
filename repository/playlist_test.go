package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateAddSongError(t *testing.T) {
	assert.NoError(t, translateAddSongError(nil))

	assert.ErrorIs(t, translateAddSongError(gorm.ErrDuplicatedKey), ErrDuplicatePlaylistSong)
	wrapped := fmt.Errorf("insert failed: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translateAddSongError(wrapped), ErrDuplicatePlaylistSong)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateAddSongError(other))
}
