package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/repository"
	"github.com/Jeremi16/synify-be/utils"
)

func (ctrl *Controller) CreatePlaylist(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	var req dto.CreatePlaylistRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	playlist := &entity.Playlist{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		UserID:      userID,
	}
	if err := ctrl.Repository.PlaylistRepo.Create(playlist); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to create playlist for user %s: %v", userID, err)
		utils.JSON500(c, "Failed to create playlist")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Playlist] User %s created playlist %s", userID, playlist.ID)
	utils.JSON201(c, playlist)
}

func (ctrl *Controller) ListMyPlaylists(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	playlists, err := ctrl.Repository.PlaylistRepo.ListByUser(userID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to list playlists for user %s: %v", userID, err)
		utils.JSON500(c, "Failed to list playlists")
		return
	}

	utils.JSON200(c, gin.H{"items": playlists})
}

func (ctrl *Controller) GetPlaylist(c *gin.Context) {
	playlist, ok := ctrl.loadOwnedPlaylist(c)
	if !ok {
		return
	}
	utils.JSON200(c, playlist)
}

func (ctrl *Controller) UpdatePlaylist(c *gin.Context) {
	ctx := c.Request.Context()

	playlist, ok := ctrl.loadOwnedPlaylist(c)
	if !ok {
		return
	}

	var req dto.UpdatePlaylistRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if req.Name != nil {
		playlist.Name = *req.Name
	}
	if req.Description != nil {
		playlist.Description = *req.Description
	}
	if req.CoverURL != nil {
		playlist.CoverURL = req.CoverURL
	}

	if err := ctrl.Repository.PlaylistRepo.Update(playlist); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to update playlist %s: %v", playlist.ID, err)
		utils.JSON500(c, "Failed to update playlist")
		return
	}

	utils.JSON200(c, playlist)
}

func (ctrl *Controller) DeletePlaylist(c *gin.Context) {
	ctx := c.Request.Context()

	playlist, ok := ctrl.loadOwnedPlaylist(c)
	if !ok {
		return
	}

	if err := ctrl.Repository.PlaylistRepo.Delete(playlist.ID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to delete playlist %s: %v", playlist.ID, err)
		utils.JSON500(c, "Failed to delete playlist")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Playlist] Deleted playlist %s", playlist.ID)
	utils.JSON200(c, gin.H{"message": "Playlist deleted"})
}

// AddPlaylistSong appends a song at the end of the playlist. Adding the same
// song twice is a conflict.
func (ctrl *Controller) AddPlaylistSong(c *gin.Context) {
	ctx := c.Request.Context()

	playlist, ok := ctrl.loadOwnedPlaylist(c)
	if !ok {
		return
	}

	var req dto.AddPlaylistSongRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if _, err := ctrl.Repository.SongRepo.FindByID(req.SongID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Song not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to load song %s: %v", req.SongID, err)
		utils.JSON500(c, "Failed to load song")
		return
	}

	item, err := ctrl.Repository.PlaylistRepo.AddSong(playlist.ID, req.SongID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePlaylistSong) {
			utils.JSON409(c, "Song is already in the playlist")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to add song %s to playlist %s: %v", req.SongID, playlist.ID, err)
		utils.JSON500(c, "Failed to add song to playlist")
		return
	}

	utils.JSON201(c, item)
}

func (ctrl *Controller) RemovePlaylistSong(c *gin.Context) {
	ctx := c.Request.Context()

	playlist, ok := ctrl.loadOwnedPlaylist(c)
	if !ok {
		return
	}

	songID, ok := parseIDParam(c, "song_id")
	if !ok {
		utils.JSON400(c, "Invalid song id")
		return
	}

	if err := ctrl.Repository.PlaylistRepo.RemoveSong(playlist.ID, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Song is not in the playlist")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to remove song %s from playlist %s: %v", songID, playlist.ID, err)
		utils.JSON500(c, "Failed to remove song from playlist")
		return
	}

	utils.JSON200(c, gin.H{"message": "Song removed from playlist"})
}

// loadOwnedPlaylist resolves the :id playlist and enforces ownership.
// Admins can touch any playlist.
func (ctrl *Controller) loadOwnedPlaylist(c *gin.Context) (*entity.Playlist, bool) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return nil, false
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid playlist id")
		return nil, false
	}

	playlist, err := ctrl.Repository.PlaylistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Playlist not found")
			return nil, false
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Playlist] Failed to load playlist %s: %v", id, err)
		utils.JSON500(c, "Failed to load playlist")
		return nil, false
	}

	if playlist.UserID != userID && c.GetString("role") != entity.RoleAdmin {
		utils.JSON403(c, "You do not own this playlist")
		return nil, false
	}

	return playlist, true
}
