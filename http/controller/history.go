package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/utils"
)

const defaultHistoryLimit = 50

// MyHistory lists the authenticated user's recent plays, newest first.
func (ctrl *Controller) MyHistory(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultHistoryLimit
	}

	rows, err := ctrl.Repository.HistoryRepo.ListByUser(userID, limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[History] Failed to list history for user %s: %v", userID, err)
		utils.JSON500(c, "Failed to load history")
		return
	}

	utils.JSON200(c, gin.H{"items": rows})
}
