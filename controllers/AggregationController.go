package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/apperr"
	"photoshare/models"
)

type mostRecentPhotoView struct {
	ID         primitive.ObjectID `json:"_id"`
	FileName   string             `json:"file_name"`
	DateTime   time.Time          `json:"date_time"`
	UserID     primitive.ObjectID `json:"user_id"`
	PhotoIndex int                `json:"photo_index"`
}

type mostCommentedPhotoView struct {
	ID           primitive.ObjectID `json:"_id"`
	FileName     string             `json:"file_name"`
	UserID       primitive.ObjectID `json:"user_id"`
	CommentCount int                `json:"comment_count"`
	PhotoIndex   int                `json:"photo_index"`
}

// mostRecentPhoto picks the photo with the latest timestamp. Strict
// comparison keeps the first photo in list order on ties, so repeated calls
// over the same list resolve identically.
func mostRecentPhoto(photos []models.Photo) (models.Photo, int) {
	winner, winnerIndex := photos[0], 0
	for i, photo := range photos {
		if photo.DateTime.After(winner.DateTime) {
			winner, winnerIndex = photo, i
		}
	}
	return winner, winnerIndex
}

// mostCommentedPhoto picks the photo with the most comments, first-wins on
// ties.
func mostCommentedPhoto(photos []models.Photo) (models.Photo, int) {
	winner, winnerIndex := photos[0], 0
	for i, photo := range photos {
		if len(photo.Comments) > len(winner.Comments) {
			winner, winnerIndex = photo, i
		}
	}
	return winner, winnerIndex
}

// ExtendedDetail reports a user's most recent photo and most commented
// photo, each with its position in the owner's photo list so the client can
// link straight to it.
func (ctl *Controller) ExtendedDetail(c *gin.Context) {
	ownerID, ok := pathObjectID(c, "id")
	if !ok {
		c.Error(apperr.Validation("invalid user ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	photos, err := ctl.Photos.FindByOwner(ctx, ownerID)
	if err != nil {
		c.Error(apperr.Internal("error retrieving data", err))
		return
	}
	if len(photos) == 0 {
		c.Error(apperr.New("user has no photos", http.StatusUnauthorized))
		return
	}

	recent, recentIndex := mostRecentPhoto(photos)
	commented, commentedIndex := mostCommentedPhoto(photos)

	c.JSON(http.StatusOK, gin.H{
		"mostRecentPhoto": mostRecentPhotoView{
			ID:         recent.ID,
			FileName:   recent.FileName,
			DateTime:   recent.DateTime,
			UserID:     recent.UserID,
			PhotoIndex: recentIndex,
		},
		"photoWithMostComments": mostCommentedPhotoView{
			ID:           commented.ID,
			FileName:     commented.FileName,
			UserID:       commented.UserID,
			CommentCount: len(commented.Comments),
			PhotoIndex:   commentedIndex,
		},
	})
}

// ExtraUserData reports how many photos a user owns and how many comments
// they have written anywhere in the store. The comment count is a reverse
// scan over embedded comment authors, not an owner-scoped one: comments left
// on other users' photos count too.
func (ctl *Controller) ExtraUserData(c *gin.Context) {
	userID, ok := pathObjectID(c, "id")
	if !ok {
		c.Error(apperr.Validation("invalid user ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	photoCount, err := ctl.Photos.CountByOwner(ctx, userID)
	if err != nil {
		c.Error(apperr.Internal("error fetching extra user data", err))
		return
	}

	commentedPhotos, err := ctl.Photos.FindByCommenter(ctx, userID)
	if err != nil {
		c.Error(apperr.Internal("error fetching extra user data", err))
		return
	}

	commentCount := 0
	for _, photo := range commentedPhotos {
		for _, comment := range photo.Comments {
			if comment.UserID == userID {
				commentCount++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":       userID,
		"photoCount":   photoCount,
		"commentCount": commentCount,
	})
}

type userCommentRecord struct {
	PhotoCreatorID primitive.ObjectID `json:"photoCreatorId"`
	PhotoIndex     int                `json:"photoIndex"`
	PhotoID        primitive.ObjectID `json:"photoId"`
	FileName       string             `json:"file_name"`
	CommentText    string             `json:"commentText"`
	CommentID      primitive.ObjectID `json:"commentId"`
}

// UserComments lists every comment the user has written, each correlated
// back to its photo's position within the photo owner's list. The owner
// list is fetched once per distinct owner and cached for the rest of the
// request; the cache is purely for throughput.
func (ctl *Controller) UserComments(c *gin.Context) {
	userID, ok := pathObjectID(c, "id")
	if !ok {
		c.Error(apperr.Validation("invalid user ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	photos, err := ctl.Photos.FindByCommenter(ctx, userID)
	if err != nil {
		c.Error(apperr.Internal("error fetching user's comments", err))
		return
	}

	ownerPhotoIDs := make(map[primitive.ObjectID][]primitive.ObjectID)
	records := []userCommentRecord{}

	for _, photo := range photos {
		ids, cached := ownerPhotoIDs[photo.UserID]
		if !cached {
			ids, err = ctl.Photos.OwnerPhotoIDs(ctx, photo.UserID)
			if err != nil {
				c.Error(apperr.Internal("error fetching user's comments", err))
				return
			}
			ownerPhotoIDs[photo.UserID] = ids
		}

		photoIndex := -1
		for i, id := range ids {
			if id == photo.ID {
				photoIndex = i
				break
			}
		}

		for _, comment := range photo.Comments {
			if comment.UserID != userID {
				continue
			}
			records = append(records, userCommentRecord{
				PhotoCreatorID: photo.UserID,
				PhotoIndex:     photoIndex,
				PhotoID:        photo.ID,
				FileName:       photo.FileName,
				CommentText:    comment.Text,
				CommentID:      comment.ID,
			})
		}
	}

	c.JSON(http.StatusOK, records)
}
