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

func (ctrl *Controller) ListAlbums(c *gin.Context) {
	ctx := c.Request.Context()
	page, limit := parsePagination(c)

	albums, total, err := ctrl.Repository.AlbumRepo.List(page, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to list albums: %v", err)
		utils.JSON500(c, "Failed to list albums")
		return
	}

	utils.JSON200(c, dto.ListResponseDTO{Items: albums, Total: total, Page: page, Limit: limit})
}

func (ctrl *Controller) GetAlbum(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid album id")
		return
	}

	album, err := ctrl.Repository.AlbumRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Album not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to load album %s: %v", id, err)
		utils.JSON500(c, "Failed to load album")
		return
	}

	utils.JSON200(c, album)
}

func (ctrl *Controller) CreateAlbum(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAlbumRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	// The owning artist must exist; albums are never orphaned at birth.
	if _, err := ctrl.Repository.ArtistRepo.FindByID(req.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Artist not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to load artist %s: %v", req.ArtistID, err)
		utils.JSON500(c, "Failed to load artist")
		return
	}

	album := &entity.Album{
		ID:          uuid.New(),
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		ReleaseYear: req.ReleaseYear,
		CoverURL:    req.CoverURL,
	}
	if err := ctrl.Repository.AlbumRepo.Create(album); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to create album %q: %v", req.Title, err)
		utils.JSON500(c, "Failed to create album")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Album] Created album %s (%q)", album.ID, album.Title)
	utils.JSON201(c, album)
}

func (ctrl *Controller) UpdateAlbum(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid album id")
		return
	}

	var req dto.UpdateAlbumRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	album, err := ctrl.Repository.AlbumRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Album not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to load album %s: %v", id, err)
		utils.JSON500(c, "Failed to load album")
		return
	}

	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.ReleaseYear != nil {
		album.ReleaseYear = *req.ReleaseYear
	}
	if req.CoverURL != nil {
		album.CoverURL = *req.CoverURL
	}

	if err := ctrl.Repository.AlbumRepo.Update(album); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to update album %s: %v", id, err)
		utils.JSON500(c, "Failed to update album")
		return
	}

	utils.JSON200(c, album)
}

// DeleteAlbum removes the album; its songs stay in the catalog with a null
// album reference.
func (ctrl *Controller) DeleteAlbum(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.JSON400(c, "Invalid album id")
		return
	}

	if err := ctrl.Repository.AlbumRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Album] Failed to delete album %s: %v", id, err)
		utils.JSON500(c, "Failed to delete album")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Album] Deleted album %s", id)
	utils.JSON200(c, gin.H{"message": "Album deleted"})
}
