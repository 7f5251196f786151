package controller

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/apperror"
	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/ingest"
	"github.com/Jeremi16/synify-be/utils"
)

// IngestSong runs the full admin ingestion pipeline: resolve the external
// link, clean metadata, connect artists, fetch the audio and store it, then
// persist the catalog row.
func (ctrl *Controller) IngestSong(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.IngestRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Ingest] Admin ingest requested: type=%s url=%s", req.SourceType, req.SourceURL)

	song, err := ctrl.Pipeline.Run(ctx, ingest.Request{
		SourceType:  req.SourceType,
		SourceURL:   req.SourceURL,
		Title:       req.Title,
		ArtistIDs:   req.ArtistIDs,
		ArtistNames: req.ArtistNames,
		AlbumID:     req.AlbumID,
		Genre:       req.Genre,
	})
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ingest] Pipeline failed for %s: %v", req.SourceURL, err)
		utils.JSONError(c, err)
		return
	}

	ctrl.invalidateSongCaches(ctx)
	utils.JSON201(c, song)
}

// CreateSong registers a catalog row for audio that already sits in storage,
// typically pushed through a signed upload URL.
func (ctrl *Controller) CreateSong(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSongRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSON400(c, err.Error())
		return
	}

	artists, err := ctrl.resolveSongArtists(req.ArtistIDs, req.ArtistNames)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	song := &entity.Song{
		ID:          uuid.New(),
		Title:       req.Title,
		Duration:    req.Duration,
		AudioKey:    req.AudioKey,
		CoverURL:    req.CoverURL,
		TrackNumber: req.TrackNumber,
		Genre:       req.Genre,
		Lyrics:      req.Lyrics,
		AlbumID:     req.AlbumID,
	}
	if err := ctrl.Repository.SongRepo.Create(song, artists); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to create song %q: %v", req.Title, err)
		utils.JSON500(c, "Failed to create song")
		return
	}
	song.Artists = artists

	ctrl.invalidateSongCaches(ctx)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Song] Created song %s (%q)", song.ID, song.Title)
	utils.JSON201(c, song)
}

// UpdateSong patches song metadata. Artist connections are replaced by id
// or by name, never both.
func (ctrl *Controller) UpdateSong(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid song id")
		return
	}

	var req dto.UpdateSongRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSON400(c, err.Error())
		return
	}

	song, err := ctrl.Repository.SongRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Song not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to load song %s: %v", id, err)
		utils.JSON500(c, "Failed to load song")
		return
	}

	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.Genre != nil {
		song.Genre = req.Genre
	}
	if req.Lyrics != nil {
		song.Lyrics = req.Lyrics
	}
	if req.SyncedLyrics != nil {
		song.SyncedLyrics = req.SyncedLyrics
	}
	if req.Moods != nil {
		song.Moods = req.Moods
	}
	if req.CoverURL != nil {
		song.CoverURL = req.CoverURL
	}
	if req.TrackNumber != nil {
		song.TrackNumber = req.TrackNumber
	}
	if req.AlbumID != nil {
		song.AlbumID = req.AlbumID
	}

	if err := ctrl.Repository.SongRepo.Update(song); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to update song %s: %v", id, err)
		utils.JSON500(c, "Failed to update song")
		return
	}

	if len(req.ArtistIDs) > 0 || len(req.ArtistNames) > 0 {
		artists, err := ctrl.resolveSongArtists(req.ArtistIDs, req.ArtistNames)
		if err != nil {
			utils.JSONError(c, err)
			return
		}
		if err := ctrl.Repository.SongRepo.ReplaceArtists(song, artists); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to replace artists for song %s: %v", id, err)
			utils.JSON500(c, "Failed to update song artists")
			return
		}
		song.Artists = artists
	}

	ctrl.invalidateSongCaches(ctx)
	utils.JSON200(c, song)
}

// DeleteSong removes the catalog row and schedules blob deletion through the
// cleanup queue. The row is authoritative, so a lingering blob is only a
// storage-cost problem.
func (ctrl *Controller) DeleteSong(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid song id")
		return
	}

	song, err := ctrl.Repository.SongRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Song not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to load song %s: %v", id, err)
		utils.JSON500(c, "Failed to load song")
		return
	}

	if err := ctrl.Repository.SongRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to delete song %s: %v", id, err)
		utils.JSON500(c, "Failed to delete song")
		return
	}

	if err := ctrl.Infra.Produce.CleanupService.PublishDelete(ctx, song.AudioKey); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Failed to schedule blob cleanup for %s: %v", song.AudioKey, err)
	}

	ctrl.invalidateSongCaches(ctx)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Song] Deleted song %s", id)
	utils.JSON200(c, gin.H{"message": "Song deleted"})
}

func (ctrl *Controller) resolveSongArtists(ids []uuid.UUID, names []string) ([]entity.Artist, error) {
	if len(ids) > 0 {
		artists := make([]entity.Artist, 0, len(ids))
		for _, artistID := range ids {
			artist, err := ctrl.Repository.ArtistRepo.FindByID(artistID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperror.NotFound("Artist " + artistID.String() + " not found")
				}
				return nil, err
			}
			artists = append(artists, *artist)
		}
		return artists, nil
	}

	artists := make([]entity.Artist, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		artist, err := ctrl.Repository.ArtistRepo.FirstOrCreateByName(name, "", "")
		if err != nil {
			return nil, err
		}
		artists = append(artists, *artist)
	}
	return artists, nil
}
