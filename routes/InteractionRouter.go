package routes

import (
	"github.com/gin-gonic/gin"

	"photoshare/controllers"
	"photoshare/middlewares"
)

// InteractionRouter registers the like and favorite toggles plus their
// read-only companions.
func InteractionRouter(incomingRoutes *gin.Engine, ctl *controllers.Controller) {
	authed := incomingRoutes.Group("/", middlewares.RequireAuth)

	authed.POST("/like_photo", ctl.LikePhoto)
	authed.POST("/unlike_photo", ctl.UnlikePhoto)
	authed.POST("/photo_like_details", ctl.PhotoLikeDetails)

	authed.POST("/favorite_photo", ctl.FavoritePhoto)
	authed.POST("/unfavorite_photo", ctl.UnfavoritePhoto)
	authed.POST("/has_favorited", ctl.HasFavorited)
	authed.GET("/user_favorites", ctl.UserFavorites)
}
