package controllers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/apperr"
	"photoshare/helper"
	"photoshare/models"
	"photoshare/repository"
)

type commentAuthorView struct {
	ID        primitive.ObjectID `json:"_id"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
}

type commentView struct {
	ID       primitive.ObjectID `json:"_id"`
	Text     string             `json:"comment"`
	DateTime time.Time          `json:"date_time"`
	User     *commentAuthorView `json:"user"`
}

type photoView struct {
	ID       primitive.ObjectID `json:"_id"`
	FileName string             `json:"file_name"`
	DateTime time.Time          `json:"date_time"`
	UserID   primitive.ObjectID `json:"user_id"`
	Comments []commentView      `json:"comments"`
	Likes    int                `json:"likes"`
}

// PhotosOfUser lists a user's photos in canonical order, with every comment
// joined to its author's minimal info. The response order is the addressing
// scheme clients use to deep-link to a photo, so it is never re-sorted.
func (ctl *Controller) PhotosOfUser(c *gin.Context) {
	ownerID, ok := pathObjectID(c, "id")
	if !ok {
		c.Error(apperr.Validation("invalid user ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := ctl.Users.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.Error(apperr.NotFound("user not found"))
		} else {
			c.Error(apperr.Internal("error retrieving data", err))
		}
		return
	}

	photos, err := ctl.Photos.FindByOwner(ctx, ownerID)
	if err != nil {
		c.Error(apperr.Internal("error retrieving data", err))
		return
	}

	authors, err := ctl.commentAuthors(c, photos)
	if err != nil {
		c.Error(apperr.Internal("error retrieving data", err))
		return
	}

	views := make([]photoView, len(photos))
	for i, photo := range photos {
		comments := make([]commentView, len(photo.Comments))
		for j, comment := range photo.Comments {
			comments[j] = commentView{
				ID:       comment.ID,
				Text:     comment.Text,
				DateTime: comment.DateTime,
				User:     authors[comment.UserID],
			}
		}
		views[i] = photoView{
			ID:       photo.ID,
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			UserID:   photo.UserID,
			Comments: comments,
			Likes:    photo.LikeCount,
		}
	}

	c.JSON(http.StatusOK, views)
}

// commentAuthors resolves the distinct comment authors across the photos in
// one batched read.
func (ctl *Controller) commentAuthors(c *gin.Context, photos []models.Photo) (map[primitive.ObjectID]*commentAuthorView, error) {
	distinct := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, photo := range photos {
		for _, comment := range photo.Comments {
			if !seen[comment.UserID] {
				seen[comment.UserID] = true
				distinct = append(distinct, comment.UserID)
			}
		}
	}

	authors := make(map[primitive.ObjectID]*commentAuthorView, len(distinct))
	if len(distinct) == 0 {
		return authors, nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := ctl.Users.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		authors[user.ID] = &commentAuthorView{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
	}
	return authors, nil
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// AddComment appends a comment to a photo. Comments are immutable once
// written, so this is a plain atomic push.
func (ctl *Controller) AddComment(c *gin.Context) {
	userID := sessionUserID(c)

	photoID, ok := pathObjectID(c, "photo_id")
	if !ok {
		c.Error(apperr.Validation("invalid photo ID format"))
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == "" {
		c.Error(apperr.Validation("please write a non-empty comment"))
		return
	}

	comment := models.Comment{
		ID:       primitive.NewObjectID(),
		Text:     req.Comment,
		DateTime: time.Now(),
		UserID:   userID,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	applied, err := ctl.Photos.AppendComment(ctx, photoID, comment)
	if err != nil {
		c.Error(apperr.Internal("an error occurred while adding the comment", err))
		return
	}
	if !applied {
		c.Error(apperr.NotFound("the provided ID did not match a photo"))
		return
	}

	if err := ctl.Users.SetLastActivity(ctx, userID, helper.ActivityCommented); err != nil {
		c.Error(apperr.Internal("an error occurred while adding the comment", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment added successfully"})
}

var validPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// UploadPhoto accepts a multipart photo upload, stores the blob in GridFS,
// and creates the photo document with empty likes and comments.
func (ctl *Controller) UploadPhoto(c *gin.Context) {
	userID := sessionUserID(c)

	file, err := c.FormFile("uploadedphoto")
	if err != nil {
		c.Error(apperr.Validation("error processing the file to upload"))
		return
	}

	if !validPhotoTypes[file.Header.Get("Content-Type")] {
		c.Error(apperr.Validation("invalid file type, allowed file types are JPEG/JPG and PNG"))
		return
	}

	fileName := fmt.Sprintf("U%d_%s", time.Now().UnixMilli(), filepath.Base(file.Filename))

	if err := ctl.storeImage(file, fileName); err != nil {
		c.Error(apperr.Internal("an error occurred while saving the photo", err))
		return
	}

	photo := models.Photo{
		ID:        primitive.NewObjectID(),
		FileName:  fileName,
		DateTime:  time.Now(),
		UserID:    userID,
		Comments:  []models.Comment{},
		LikeCount: 0,
		LikedBy:   []primitive.ObjectID{},
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ctl.Photos.Insert(ctx, &photo); err != nil {
		c.Error(apperr.Internal("an error occurred while saving the photo", err))
		return
	}

	if err := ctl.Users.SetLastActivity(ctx, userID, helper.PhotoActivity(fileName)); err != nil {
		c.Error(apperr.Internal("an error occurred while saving the photo", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (ctl *Controller) storeImage(file *multipart.FileHeader, fileName string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	uploadStream, err := ctl.Images.OpenUploadStream(fileName)
	if err != nil {
		return err
	}
	defer uploadStream.Close()

	_, err = io.Copy(uploadStream, src)
	return err
}

// GetImage streams an uploaded photo file out of GridFS by file name.
func (ctl *Controller) GetImage(c *gin.Context) {
	fileName := c.Param("file_name")

	downloadStream, err := ctl.Images.OpenDownloadStreamByName(fileName)
	if err != nil {
		c.Error(apperr.NotFound("image not found"))
		return
	}
	defer downloadStream.Close()

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)

	if _, err := io.Copy(c.Writer, downloadStream); err != nil {
		c.Error(apperr.Internal("failed to stream image", err))
		return
	}
}
