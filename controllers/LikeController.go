package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/apperr"
	"photoshare/repository"
)

// LikePhoto adds the session user's like to a photo. The membership check
// and the counter increment happen in one atomic store update; a repeated
// like is a conflict, not a no-op, because the client's button should have
// been disabled.
func (ctl *Controller) LikePhoto(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	applied, err := ctl.Photos.AddLike(ctx, photoID, userID)
	if err != nil {
		c.Error(apperr.Internal("an error occurred while adding the like to the photo", err))
		return
	}
	if !applied {
		ctl.reportLikeConflict(c, photoID, "user has already liked this photo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "like added successfully"})
}

// UnlikePhoto removes the session user's like, decrementing the counter in
// the same atomic update that removes the set member.
func (ctl *Controller) UnlikePhoto(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	applied, err := ctl.Photos.RemoveLike(ctx, photoID, userID)
	if err != nil {
		c.Error(apperr.Internal("an error occurred while removing the like from the photo", err))
		return
	}
	if !applied {
		ctl.reportLikeConflict(c, photoID, "user has not liked this photo before")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "photo unliked successfully"})
}

// reportLikeConflict maps an unmatched toggle update onto the error
// taxonomy: the photo is either missing or already in the target state.
func (ctl *Controller) reportLikeConflict(c *gin.Context, photoID primitive.ObjectID, conflictMsg string) {
	ctx, cancel := requestContext(c)
	defer cancel()

	_, err := ctl.Photos.FindByID(ctx, photoID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.Error(apperr.NotFound("no photo was found matching the provided ID"))
	case err != nil:
		c.Error(apperr.Internal("an error occurred while checking the photo", err))
	default:
		c.Error(apperr.Conflict(conflictMsg))
	}
}

// PhotoLikeDetails reports the like count and whether the session user has
// liked the photo.
func (ctl *Controller) PhotoLikeDetails(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := bindPhotoID(c)
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	photo, err := ctl.Photos.FindByID(ctx, photoID)
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.NotFound("no photo was found matching the provided ID"))
		return
	}
	if err != nil {
		c.Error(apperr.Internal("an error occurred while fetching the photo's like details", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"like_count":     photo.LikeCount,
		"has_user_liked": photo.LikedByUser(userID),
	})
}
