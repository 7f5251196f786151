package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/entity"
	"github.com/Jeremi16/synify-be/utils"
)

// AdminMiddleware runs after AuthMiddleware and requires the ADMIN role.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != entity.RoleAdmin {
			utils.JSON403(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
