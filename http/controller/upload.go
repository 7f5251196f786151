package controller

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/utils"
)

// SignUpload returns a presigned PUT URL so admin tooling can push blobs
// (covers, audio) straight to object storage.
func (ctrl *Controller) SignUpload(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignUploadRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ext := filepath.Ext(req.Filename)
	base := strings.TrimSuffix(req.Filename, ext)
	key := utils.BuildObjectKey(req.Folder, base, ext)

	uploadURL, err := ctrl.Infra.Minio.PresignedPutURL(ctx, key)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to presign upload URL for %s: %v", key, err)
		utils.JSON500(c, "Failed to create upload URL")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Upload] Signed upload URL for key %s", key)
	utils.JSON200(c, dto.SignUploadResponseDTO{
		Key:       key,
		UploadURL: uploadURL,
		ExpiresIn: int(infra.UploadURLExpiry.Seconds()),
	})
}

// ObjectExists answers whether a stored key still has a blob behind it. The
// catalog row is authoritative; this is the on-demand consistency probe.
func (ctrl *Controller) ObjectExists(c *gin.Context) {
	ctx := c.Request.Context()

	key := c.Query("key")
	if key == "" {
		utils.JSON400(c, "Missing key parameter")
		return
	}

	exists, err := ctrl.Infra.Minio.ObjectExists(ctx, key)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Storage] Existence check failed for %s: %v", key, err)
		utils.JSON500(c, "Failed to check object")
		return
	}

	utils.JSON200(c, gin.H{"key": key, "exists": exists})
}
