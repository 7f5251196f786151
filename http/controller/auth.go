package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/http/controller/dto"
	"github.com/Jeremi16/synify-be/utils"
)

// Login exchanges a Google ID token for a session token. Users are created
// on first login and refreshed on every subsequent one.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	identity, err := ctrl.Infra.Identity.Verify(ctx, req.Credential)
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] ID token verification failed: %v", err)
		utils.JSON401(c, "Invalid identity token")
		return
	}

	user, err := ctrl.Repository.UserRepo.UpsertByEmail(identity)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to upsert user %s: %v", identity.Email, err)
		utils.JSON500(c, "Failed to persist user")
		return
	}

	token, err := utils.GenerateToken(user, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to sign session token: %v", err)
		utils.JSON500(c, "Failed to create session")
		return
	}

	c.SetCookie("access_token", token, ctrl.Config.EnvConfig.JWT.Expire, "/", "", false, true)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] User %s logged in", user.ID)
	utils.JSON200(c, dto.LoginResponseDTO{Token: token, User: user})
}

// Me returns the authenticated user's profile.
func (ctrl *Controller) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByID(userID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to load user %s: %v", userID, err)
		utils.JSON404(c, "User not found")
		return
	}

	utils.JSON200(c, user)
}
