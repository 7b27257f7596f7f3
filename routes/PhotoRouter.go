package routes

import (
	"github.com/gin-gonic/gin"

	"photoshare/controllers"
	"photoshare/middlewares"
)

func PhotoRouter(incomingRoutes *gin.Engine, ctl *controllers.Controller) {
	authed := incomingRoutes.Group("/", middlewares.RequireAuth)

	authed.GET("/photosOfUser/:id", ctl.PhotosOfUser)
	authed.POST("/photos/new", ctl.UploadPhoto)
	authed.POST("/commentsOfPhoto/:photo_id", ctl.AddComment)
	authed.GET("/images/:file_name", ctl.GetImage)
}
