package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/utils"
)

func (ctrl *Controller) ListArtists(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := parsePagination(c)

	artists, total, err := ctrl.Repository.ArtistRepo.List(page, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to list artists: %v", err)
		utils.JSON500(c, "Failed to list artists")
		return
	}

	utils.JSON200(c, dto.ListResponseDTO{Items: artists, Total: total, Page: page, Limit: limit})
}

func (ctrl *Controller) GetArtist(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid artist id")
		return
	}

	artist, err := ctrl.Repository.ArtistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Artist not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to load artist %s: %v", id, err)
		utils.JSON500(c, "Failed to load artist")
		return
	}

	utils.JSON200(c, artist)
}

func (ctrl *Controller) CreateArtist(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateArtistRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	artist := &entity.Artist{
		ID:        uuid.New(),
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}
	if err := ctrl.Repository.ArtistRepo.Create(artist); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.JSON409(c, "Artist with this name already exists")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to create artist %q: %v", req.Name, err)
		utils.JSON500(c, "Failed to create artist")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Artist] Created artist %s (%q)", artist.ID, artist.Name)
	utils.JSON201(c, artist)
}

func (ctrl *Controller) UpdateArtist(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid artist id")
		return
	}

	var req dto.UpdateArtistRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	artist, err := ctrl.Repository.ArtistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Artist not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to load artist %s: %v", id, err)
		utils.JSON500(c, "Failed to load artist")
		return
	}

	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		artist.AvatarURL = *req.AvatarURL
	}

	if err := ctrl.Repository.ArtistRepo.Update(artist); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to update artist %s: %v", id, err)
		utils.JSON500(c, "Failed to update artist")
		return
	}

	utils.JSON200(c, artist)
}

// DeleteArtist removes an artist with its albums. Songs survive as long as
// another artist still owns them.
func (ctrl *Controller) DeleteArtist(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid artist id")
		return
	}

	if err := ctrl.Repository.ArtistRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Artist not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Artist] Failed to delete artist %s: %v", id, err)
		utils.JSON500(c, "Failed to delete artist")
		return
	}

	ctrl.invalidateSongCaches(ctx)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Artist] Deleted artist %s", id)
	utils.JSON200(c, gin.H{"message": "Artist deleted"})
}
