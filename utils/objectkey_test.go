package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"track.mp3", "track.mp3"},
		{"My Song (live)!", "My_Song__live__"},
		{"tiếng việt", "ti_ng_vi_t"},
		{"already-safe-0.9", "already-safe-0.9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := SanitizeFilename(long)
	assert.Len(t, got, 50)
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("covers", "Album Art", ".png")

	assert.True(t, strings.HasPrefix(key, "covers/"), key)
	assert.True(t, strings.HasSuffix(key, "-Album_Art.png"), key)
}

func TestBuildObjectKeyDefaults(t *testing.T) {
	key := BuildObjectKey("", "song", "mp3")

	assert.True(t, strings.HasPrefix(key, "audio/"), key)
	assert.True(t, strings.HasSuffix(key, ".mp3"), key)
}

func TestBuildObjectKeyUnique(t *testing.T) {
	a := BuildObjectKey("audio", "same", ".mp3")
	b := BuildObjectKey("audio", "same", ".mp3")
	assert.NotEqual(t, a, b)
}
