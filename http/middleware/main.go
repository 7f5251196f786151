package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Jeremi16/synify-be/http/controller"
)

type Middlewares struct {
	CORSMiddleware         gin.HandlerFunc
	AuthMiddleware         gin.HandlerFunc
	OptionalAuthMiddleware gin.HandlerFunc
	AdminMiddleware        gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) *Middlewares {
	return &Middlewares{
		CORSMiddleware:         CORSMiddleware(ctrl.Config.EnvConfig),
		AuthMiddleware:         AuthMiddleware(ctrl.Config.EnvConfig),
		OptionalAuthMiddleware: OptionalAuthMiddleware(ctrl.Config.EnvConfig),
		AdminMiddleware:        AdminMiddleware(),
	}
}
