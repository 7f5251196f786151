package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTitle   string
		wantArtists []string
	}{
		{
			name:        "single artist with noise suffix",
			raw:         "Tulus - Gajah (Official Music Video)",
			wantTitle:   "Gajah",
			wantArtists: []string{"Tulus"},
		},
		{
			name:        "two artists joined by ampersand",
			raw:         "Tulus & Raisa - Duet",
			wantTitle:   "Duet",
			wantArtists: []string{"Tulus", "Raisa"},
		},
		{
			name:        "comma and and separators",
			raw:         "Anggi, Budi and Citra - Bersama",
			wantTitle:   "Bersama",
			wantArtists: []string{"Anggi", "Budi", "Citra"},
		},
		{
			name:        "feat separator with period",
			raw:         "Artist feat. Guest - Track",
			wantTitle:   "Track",
			wantArtists: []string{"Artist", "Guest"},
		},
		{
			name:        "x separator",
			raw:         "Alpha x Beta - Collab",
			wantTitle:   "Collab",
			wantArtists: []string{"Alpha", "Beta"},
		},
		{
			name:        "bracketed lyrics noise",
			raw:         "Raisa - Kali Kedua [LYRICS]",
			wantTitle:   "Kali Kedua",
			wantArtists: []string{"Raisa"},
		},
		{
			name:        "no separator falls back to whole string",
			raw:         "SingleWordTitle",
			wantTitle:   "SingleWordTitle",
			wantArtists: []string{"SingleWordTitle"},
		},
		{
			name:        "surrounding whitespace",
			raw:         "  Tulus -   Monokrom  ",
			wantTitle:   "Monokrom",
			wantArtists: []string{"Tulus"},
		},
		{
			name:        "trailing dash keeps raw title",
			raw:         "Tulus -",
			wantTitle:   "Tulus -",
			wantArtists: []string{"Tulus"},
		},
		{
			name:        "post-dash segment that is pure noise keeps raw title",
			raw:         "Tulus - (Official Music Video)",
			wantTitle:   "Tulus - (Official Music Video)",
			wantArtists: []string{"Tulus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTitle(tt.raw)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantArtists, got.Artists)
		})
	}
}

func TestParseTitleArtistNameWithX(t *testing.T) {
	// "x" only splits as a standalone word, never inside a name.
	got := ParseTitle("Xavi - Lagu")
	assert.Equal(t, []string{"Xavi"}, got.Artists)
}
