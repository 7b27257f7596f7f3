package routes

import (
	"github.com/gin-gonic/gin"

	"photoshare/controllers"
	"photoshare/middlewares"
)

func UserRouter(incomingRoutes *gin.Engine, ctl *controllers.Controller) {
	authed := incomingRoutes.Group("/", middlewares.RequireAuth)

	authed.GET("/user/list", ctl.ListUsers)
	authed.GET("/user/:id", ctl.GetUser)
}
