package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"photoshare/middlewares"
	"photoshare/repository"
)

var validate = validator.New()

const storeTimeout = 10 * time.Second

// Controller holds the handlers' dependencies. All store access goes through
// the repositories; Images is the GridFS bucket backing photo uploads.
type Controller struct {
	Users  repository.UserRepository
	Photos repository.PhotoRepository
	Images *gridfs.Bucket
}

func New(users repository.UserRepository, photos repository.PhotoRepository, images *gridfs.Bucket) *Controller {
	return &Controller{Users: users, Photos: photos, Images: images}
}

// requestContext bounds store work by the inbound request's lifetime.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// sessionUserID returns the identity the auth gate resolved for this
// request. Only reachable on gated routes, where the gate has already set it.
func sessionUserID(c *gin.Context) primitive.ObjectID {
	return c.MustGet(middlewares.UserIDKey).(primitive.ObjectID)
}

// photoRequest is the body shared by the like and favorite toggles.
type photoRequest struct {
	PhotoID string `json:"photo_id"`
}

// bindPhotoID parses and validates the photo id in the request body without
// touching the store.
func bindPhotoID(c *gin.Context) (primitive.ObjectID, bool) {
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return primitive.NilObjectID, false
	}

	photoID, err := primitive.ObjectIDFromHex(req.PhotoID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return photoID, true
}

// pathObjectID validates the :id style path parameter.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
