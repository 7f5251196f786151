package ingest

import (
	"regexp"
	"strings"
)

// ParsedMetadata is the outcome of splitting a raw upload title into a
// cleaned title and candidate artist names.
type ParsedMetadata struct {
	Title   string
	Artists []string
}

var (
	// Bracketed noise such as "(Official Music Video)" or "[Lyrics]".
	bracketNoiseRe = regexp.MustCompile(`(?i)\s*[(\[][^)\]]*(official|lyric|music\s+video)[^)\]]*[)\]]`)
	// Bare trailing noise tokens.
	bareNoiseRe    = regexp.MustCompile(`(?i)\s*\b(official\s+music\s+video|official\s+video|music\s+video|lyrics)\b`)
	artistSplitRe  = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b|\bx\b|\bfeat\b\.?|\bft\b\.?)\s*`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// ParseTitle is the deterministic fallback parser for raw source titles.
// "Artist1 & Artist2 - Title (Official Music Video)" splits on the dash;
// the artist segment is split further on common join separators. A string
// without a separator becomes both the title and the sole artist candidate,
// accepted as best-effort.
func ParseTitle(raw string) ParsedMetadata {
	raw = strings.TrimSpace(raw)

	sep := strings.Index(raw, "-")
	if sep < 0 {
		title := cleanTitle(raw)
		if title == "" {
			title = raw
		}
		return ParsedMetadata{Title: title, Artists: []string{title}}
	}

	artistSegment := raw[:sep]
	title := cleanTitle(raw[strings.LastIndex(raw, "-")+1:])
	if title == "" {
		// Nothing usable after the dash; keep the raw string rather than
		// hand an empty title downstream.
		title = raw
	}

	artists := splitArtists(artistSegment)
	if len(artists) == 0 {
		artists = []string{title}
	}

	return ParsedMetadata{Title: title, Artists: artists}
}

func splitArtists(segment string) []string {
	parts := artistSplitRe.Split(segment, -1)
	artists := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			artists = append(artists, p)
		}
	}
	return artists
}

func cleanTitle(s string) string {
	s = bracketNoiseRe.ReplaceAllString(s, "")
	s = bareNoiseRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
