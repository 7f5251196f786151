package controller

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/utils"
)

const (
	featuredCacheKey = "songs:featured"
	trendingCacheKey = "songs:trending"
	songCacheTTL     = 5 * time.Minute

	feedLimit = 20
)

func (ctrl *Controller) ListSongs(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := parsePagination(c)

	songs, total, err := ctrl.Repository.SongRepo.List(page, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to list songs: %v", err)
		utils.JSON500(c, "Failed to list songs")
		return
	}

	utils.JSON200(c, dto.ListResponseDTO{Items: songs, Total: total, Page: page, Limit: limit})
}

func (ctrl *Controller) GetSong(c *gin.Context) {
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

	utils.JSON200(c, song)
}

// FeaturedSongs serves a cached random selection for the home feed.
func (ctrl *Controller) FeaturedSongs(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []entity.Song
	if err := ctrl.Infra.Redis.Get(ctx, featuredCacheKey, &cached); err == nil {
		utils.JSON200(c, gin.H{"items": cached})
		return
	} else if !errors.Is(err, infra.ErrCacheMiss) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Featured cache read failed: %v", err)
	}

	songs, err := ctrl.Repository.SongRepo.Featured(feedLimit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to load featured songs: %v", err)
		utils.JSON500(c, "Failed to load featured songs")
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, featuredCacheKey, songs, songCacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Featured cache write failed: %v", err)
	}

	utils.JSON200(c, gin.H{"items": songs})
}

// TrendingSongs serves the most-played list, cached briefly since play
// counts move fast.
func (ctrl *Controller) TrendingSongs(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []entity.Song
	if err := ctrl.Infra.Redis.Get(ctx, trendingCacheKey, &cached); err == nil {
		utils.JSON200(c, gin.H{"items": cached})
		return
	} else if !errors.Is(err, infra.ErrCacheMiss) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Trending cache read failed: %v", err)
	}

	songs, err := ctrl.Repository.SongRepo.Trending(feedLimit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Song] Failed to load trending songs: %v", err)
		utils.JSON500(c, "Failed to load trending songs")
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, trendingCacheKey, songs, songCacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Trending cache write failed: %v", err)
	}

	utils.JSON200(c, gin.H{"items": songs})
}

func (ctrl *Controller) invalidateSongCaches(ctx context.Context) {
	if err := ctrl.Infra.Redis.Delete(ctx, featuredCacheKey, trendingCacheKey); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Song] Cache invalidation failed: %v", err)
	}
}
