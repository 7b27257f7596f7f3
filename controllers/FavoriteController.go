package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/apperr"
	"photoshare/models"
	"photoshare/repository"
)

// FavoritePhoto adds a photo to the session user's favorite set. Favorites
// live on the user document and carry no counter; membership alone is the
// state. Dangling photo ids are tolerated, so the photo itself is not
// checked.
func (ctl *Controller) FavoritePhoto(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	applied, err := ctl.Users.AddFavorite(ctx, userID, photoID)
	if err != nil {
		c.Error(apperr.Internal("an error occurred while favoriting the photo", err))
		return
	}
	if !applied {
		ctl.reportFavoriteConflict(c, userID, "user has already favorited this photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite added successfully"})
}

// UnfavoritePhoto removes a photo from the session user's favorite set.
func (ctl *Controller) UnfavoritePhoto(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	applied, err := ctl.Users.RemoveFavorite(ctx, userID, photoID)
	if err != nil {
		c.Error(apperr.Internal("an error occurred while removing the favorite from the photo", err))
		return
	}
	if !applied {
		ctl.reportFavoriteConflict(c, userID, "user has not favorited this photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed successfully"})
}

func (ctl *Controller) reportFavoriteConflict(c *gin.Context, userID primitive.ObjectID, conflictMsg string) {
	ctx, cancel := requestContext(c)
	defer cancel()

	_, err := ctl.Users.FindByID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Error(apperr.NotFound("no user was found matching the provided ID"))
	case err != nil:
		c.Error(apperr.Internal("an error occurred while checking the user", err))
	default:
		c.Error(apperr.Conflict(conflictMsg))
	}
}

// HasFavorited reports whether the session user has favorited the photo.
func (ctl *Controller) HasFavorited(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.NotFound("no user was found matching the provided ID"))
		return
	}
	if err != nil {
		c.Error(apperr.Internal("an error occurred while checking if photo was favorited", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": user.HasFavorited(photoID)})
}

// UserFavorites resolves the session user's favorite photo ids into full
// photo objects. Ids whose photos have since disappeared are skipped by the
// $in fan-out.
func (ctl *Controller) UserFavorites(c *gin.Context) {
	userID := sessionUserID(c)

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.NotFound("no user was found matching the provided ID"))
		return
	}
	if err != nil {
		c.Error(apperr.Internal("an error occurred while getting the user's favorite photos", err))
		return
	}

	favorites := []models.Photo{}
	if len(user.FavoritePhotos) > 0 {
		favorites, err = ctl.Photos.FindByIDs(ctx, user.FavoritePhotos)
		if err != nil {
			c.Error(apperr.Internal("an error occurred while getting the user's favorite photos", err))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"favorite_photos": favorites})
}
