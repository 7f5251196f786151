package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/infra/produce"
	"github.com/Jeremi16/synify-be/utils"
)

// StreamSong returns a short-lived presigned URL for the song's audio blob.
// The client streams directly from object storage; this service never
// proxies the bytes. The playback event is published fire-and-forget, so a
// broker hiccup cannot break playback.
func (ctrl *Controller) StreamSong(c *gin.Context) {
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
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Stream] Failed to load song %s: %v", id, err)
		utils.JSON500(c, "Failed to load song")
		return
	}

	streamURL, err := ctrl.Infra.Minio.PresignedGetURL(ctx, song.AudioKey)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Stream] Failed to presign URL for song %s: %v", id, err)
		utils.JSON500(c, "Failed to create stream URL")
		return
	}

	msg := produce.PlaybackMessage{
		SongID:    song.ID.String(),
		PlayedAt:  time.Now().Unix(),
		Anonymous: true,
	}
	if userID := c.GetString("user_id"); userID != "" {
		msg.UserID = userID
		msg.Anonymous = false
	}
	if err := ctrl.Infra.Produce.PlaybackService.PublishPlayed(ctx, msg); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Stream] Failed to publish playback event for song %s: %v", id, err)
	}

	utils.JSON200(c, dto.StreamResponseDTO{
		StreamURL: streamURL,
		ExpiresIn: int(infra.DownloadURLExpiry.Seconds()),
	})
}
