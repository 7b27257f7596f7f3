package routes

import (
	"github.com/gin-gonic/gin"

	"photoshare/controllers"
	"photoshare/middlewares"
)

// AggregationRouter registers the derived-view endpoints.
func AggregationRouter(incomingRoutes *gin.Engine, ctl *controllers.Controller) {
	authed := incomingRoutes.Group("/", middlewares.RequireAuth)

	authed.GET("/user/:id/extended_detail", ctl.ExtendedDetail)
	authed.GET("/extraUserData/:id", ctl.ExtraUserData)
	authed.GET("/userComments/:id", ctl.UserComments)
}
