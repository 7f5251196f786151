package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/apperror"
	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/repository"
	"github.com/Jeremi16/synify-be/utils"
)

const (
	SourceVideo = "video"
	SourceTrack = "track"

	placeholderArtistName = "Unknown Artist"

	audioFolder      = "audio"
	audioExtension   = ".mp3"
	audioContentType = "audio/mpeg"
)

// Request describes one admin-triggered ingestion. Title and artist fields
// are optional overrides; when absent the pipeline derives them from the
// resolved source title.
type Request struct {
	SourceType  string
	SourceURL   string
	Title       string
	ArtistIDs   []uuid.UUID
	ArtistNames []string
	AlbumID     *uuid.UUID
	Genre       *string
}

// Pipeline turns an external media link into a stored, streamable catalog
// song: resolve, clean metadata, connect artists, fetch the audio bytes,
// store the blob, persist the row.
type Pipeline struct {
	infra   *infra.Infra
	repo    *repository.Repository
	cleaner *MetadataCleaner
}

func NewPipeline(inf *infra.Infra, repo *repository.Repository) *Pipeline {
	return &Pipeline{
		infra:   inf,
		repo:    repo,
		cleaner: NewMetadataCleaner(inf.AI, inf.Logger),
	}
}

func (p *Pipeline) Run(ctx context.Context, req Request) (*entity.Song, error) {
	if req.SourceType != SourceVideo && req.SourceType != SourceTrack {
		return nil, apperror.Validation(fmt.Sprintf("unknown source type %q", req.SourceType))
	}

	resolved, err := p.resolveSource(ctx, req)
	if err != nil {
		return nil, apperror.Upstream("failed to resolve source", err)
	}

	title, artistNames := p.deriveMetadata(ctx, req, resolved.Title)

	artists, err := p.resolveArtists(ctx, req.ArtistIDs, artistNames)
	if err != nil {
		return nil, err
	}

	data, err := p.infra.Downloader.FetchBinary(ctx, resolved.DownloadURL, req.SourceType == SourceVideo)
	if err != nil {
		return nil, apperror.Upstream("failed to fetch audio", err)
	}

	key := utils.BuildObjectKey(audioFolder, title, audioExtension)
	if err := p.infra.Minio.PutObject(ctx, key, data, audioContentType); err != nil {
		return nil, apperror.Upstream("failed to store audio", err)
	}

	song := &entity.Song{
		ID:       uuid.New(),
		Title:    title,
		Duration: resolved.Duration,
		AudioKey: key,
		AlbumID:  req.AlbumID,
		Genre:    req.Genre,
	}
	if resolved.Thumbnail != "" {
		song.CoverURL = &resolved.Thumbnail
	}

	if err := p.repo.SongRepo.Create(song, artists); err != nil {
		// The blob stays behind; there is no compensation step. Operators can
		// find it by key in the log line.
		p.infra.Logger.ErrorWithContextf(ctx, err, "[Ingest] Song persist failed, blob %s is orphaned", key)
		return nil, apperror.Persistence("failed to persist song", err)
	}

	song.Artists = artists
	p.infra.Logger.InfoWithContextf(ctx, "[Ingest] Ingested %q as %s (key %s)", title, song.ID, key)
	return song, nil
}

func (p *Pipeline) resolveSource(ctx context.Context, req Request) (*infra.ResolvedSource, error) {
	if req.SourceType == SourceVideo {
		return p.infra.Downloader.ResolveVideo(ctx, req.SourceURL)
	}
	return p.infra.Downloader.ResolveTrack(ctx, req.SourceURL)
}

// deriveMetadata prefers admin-supplied overrides; only the unspecified
// pieces go through cleanup of the raw source title.
func (p *Pipeline) deriveMetadata(ctx context.Context, req Request, rawTitle string) (string, []string) {
	title := strings.TrimSpace(req.Title)
	hasArtists := len(req.ArtistIDs) > 0 || len(req.ArtistNames) > 0

	if title != "" && hasArtists {
		return title, req.ArtistNames
	}

	parsed := p.cleaner.Clean(ctx, rawTitle)
	if title == "" {
		title = parsed.Title
	}
	if hasArtists {
		return title, req.ArtistNames
	}
	return title, parsed.Artists
}

// resolveArtists connects the song to catalog artists. Explicit ids win over
// names; unknown ids become placeholder rows so the reference stays valid.
// Names are enriched concurrently before the serial connect-or-create pass.
func (p *Pipeline) resolveArtists(ctx context.Context, ids []uuid.UUID, names []string) ([]entity.Artist, error) {
	if len(ids) > 0 {
		artists := make([]entity.Artist, 0, len(ids))
		for _, id := range ids {
			artist, err := p.ensureArtistByID(id)
			if err != nil {
				return nil, apperror.Persistence("failed to resolve artist", err)
			}
			artists = append(artists, *artist)
		}
		return artists, nil
	}

	matches := p.enrichArtists(ctx, names)

	artists := make([]entity.Artist, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var avatarURL, bio string
		if match := matches[i]; match != nil {
			avatarURL = match.AvatarURL
			if len(match.Genres) > 0 {
				bio = strings.Join(match.Genres, ", ")
			}
		}

		artist, err := p.repo.ArtistRepo.FirstOrCreateByName(name, avatarURL, bio)
		if err != nil {
			return nil, apperror.Persistence("failed to resolve artist", err)
		}
		artists = append(artists, *artist)
	}

	if len(artists) == 0 {
		return nil, apperror.Validation("song needs at least one artist")
	}
	return artists, nil
}

func (p *Pipeline) ensureArtistByID(id uuid.UUID) (*entity.Artist, error) {
	artist, err := p.repo.ArtistRepo.FindByID(id)
	if err == nil {
		return artist, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	placeholder := &entity.Artist{ID: id, Name: placeholderArtistName}
	if err := p.repo.ArtistRepo.Create(placeholder); err != nil {
		// The placeholder name is unique, so a second unknown id reuses the
		// existing row instead of creating another one.
		if existing, findErr := p.repo.ArtistRepo.FindByName(placeholderArtistName); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return placeholder, nil
}

// enrichArtists looks every name up concurrently. Lookup failures only cost
// the enrichment; the artist still gets created from the bare name.
func (p *Pipeline) enrichArtists(ctx context.Context, names []string) []*infra.ArtistMatch {
	matches := make([]*infra.ArtistMatch, len(names))
	if p.infra.Spotify == nil || !p.infra.Spotify.Enabled() {
		return matches
	}

	var wg sync.WaitGroup
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			match, err := p.infra.Spotify.SearchArtist(ctx, name)
			if err != nil {
				p.infra.Logger.WarningWithContextf(ctx, "[Ingest] Artist enrichment failed for %q: %v", name, err)
				return
			}
			matches[i] = match
		}(i, name)
	}
	wg.Wait()

	return matches
}
