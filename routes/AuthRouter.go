package routes

import (
	"github.com/gin-gonic/gin"

	"photoshare/controllers"
)

// AuthRouter registers the routes that bypass the auth gate: login, logout,
// and registration.
func AuthRouter(incomingRoutes *gin.Engine, ctl *controllers.Controller) {
	incomingRoutes.POST("/admin/login", ctl.Login)
	incomingRoutes.POST("/admin/logout", ctl.Logout)
	incomingRoutes.POST("/user", ctl.RegisterUser)
}
