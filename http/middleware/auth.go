package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/utils"
)

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			utils.JSON401(c, "Missing authentication token")
			c.Abort()
			return
		}

		token, err := utils.ParseToken(tokenString, cfg)
		if err != nil || !token.Valid {
			utils.JSON401(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		if err := utils.InjectClaimsToContext(c, claims); err != nil {
			utils.JSON401(c, "Invalid token claims")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware injects the identity when a valid token is present
// and lets anonymous requests through untouched. Used by the stream endpoint
// so playback events can be attributed when possible.
func OptionalAuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := utils.ParseToken(tokenString, cfg)
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			_ = utils.InjectClaimsToContext(c, claims)
		}

		c.Next()
	}
}
