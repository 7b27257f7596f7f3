package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/helper"
	"photoshare/middlewares"
	"photoshare/models"
	"photoshare/repository"
)

// fakeUserRepo is an in-memory UserRepository with deterministic insertion
// order. storeOps counts every store access so validation tests can assert
// the store was never touched.
type fakeUserRepo struct {
	users    []*models.User
	storeOps int
}

func (f *fakeUserRepo) find(id primitive.ObjectID) *models.User {
	for _, user := range f.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	f.storeOps++
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.storeOps++
	if user := f.find(id); user != nil {
		found := *user
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByLoginName(_ context.Context, loginName string) (*models.User, error) {
	f.storeOps++
	for _, user := range f.users {
		if user.LoginName == loginName {
			found := *user
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	f.storeOps++
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var users []models.User
	for _, user := range f.users {
		if wanted[user.ID] {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	f.storeOps++
	users := make([]models.User, len(f.users))
	for i, user := range f.users {
		users[i] = *user
	}
	return users, nil
}

func (f *fakeUserRepo) SetLastActivity(_ context.Context, id primitive.ObjectID, activity string) error {
	f.storeOps++
	if user := f.find(id); user != nil {
		user.LastActivity = activity
	}
	return nil
}

func (f *fakeUserRepo) AddFavorite(_ context.Context, userID, photoID primitive.ObjectID) (bool, error) {
	f.storeOps++
	user := f.find(userID)
	if user == nil || user.HasFavorited(photoID) {
		return false, nil
	}
	user.FavoritePhotos = append(user.FavoritePhotos, photoID)
	return true, nil
}

func (f *fakeUserRepo) RemoveFavorite(_ context.Context, userID, photoID primitive.ObjectID) (bool, error) {
	f.storeOps++
	user := f.find(userID)
	if user == nil || !user.HasFavorited(photoID) {
		return false, nil
	}
	kept := user.FavoritePhotos[:0]
	for _, id := range user.FavoritePhotos {
		if id != photoID {
			kept = append(kept, id)
		}
	}
	user.FavoritePhotos = kept
	return true, nil
}

// fakePhotoRepo mirrors the conditional-update semantics of the mongo
// implementation: an unmatched toggle reports false whether the photo is
// missing or the membership precondition failed, and set and counter always
// move together. ownerListFetches counts OwnerPhotoIDs calls per owner.
type fakePhotoRepo struct {
	photos           []*models.Photo
	storeOps         int
	ownerListFetches map[primitive.ObjectID]int
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{ownerListFetches: map[primitive.ObjectID]int{}}
}

func (f *fakePhotoRepo) find(id primitive.ObjectID) *models.Photo {
	for _, photo := range f.photos {
		if photo.ID == id {
			return photo
		}
	}
	return nil
}

func (f *fakePhotoRepo) Insert(_ context.Context, photo *models.Photo) error {
	f.storeOps++
	stored := *photo
	f.photos = append(f.photos, &stored)
	return nil
}

func (f *fakePhotoRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Photo, error) {
	f.storeOps++
	if photo := f.find(id); photo != nil {
		found := *photo
		return &found, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePhotoRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Photo, error) {
	f.storeOps++
	var photos []models.Photo
	for _, photo := range f.photos {
		if photo.UserID == ownerID {
			photos = append(photos, *photo)
		}
	}
	return photos, nil
}

func (f *fakePhotoRepo) OwnerPhotoIDs(_ context.Context, ownerID primitive.ObjectID) ([]primitive.ObjectID, error) {
	f.storeOps++
	f.ownerListFetches[ownerID]++
	var ids []primitive.ObjectID
	for _, photo := range f.photos {
		if photo.UserID == ownerID {
			ids = append(ids, photo.ID)
		}
	}
	return ids, nil
}

func (f *fakePhotoRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Photo, error) {
	f.storeOps++
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var photos []models.Photo
	for _, photo := range f.photos {
		if wanted[photo.ID] {
			photos = append(photos, *photo)
		}
	}
	return photos, nil
}

func (f *fakePhotoRepo) FindByCommenter(_ context.Context, userID primitive.ObjectID) ([]models.Photo, error) {
	f.storeOps++
	var photos []models.Photo
	for _, photo := range f.photos {
		for _, comment := range photo.Comments {
			if comment.UserID == userID {
				photos = append(photos, *photo)
				break
			}
		}
	}
	return photos, nil
}

func (f *fakePhotoRepo) CountByOwner(_ context.Context, ownerID primitive.ObjectID) (int64, error) {
	f.storeOps++
	var count int64
	for _, photo := range f.photos {
		if photo.UserID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakePhotoRepo) AddLike(_ context.Context, photoID, userID primitive.ObjectID) (bool, error) {
	f.storeOps++
	photo := f.find(photoID)
	if photo == nil || photo.LikedByUser(userID) {
		return false, nil
	}
	photo.LikedBy = append(photo.LikedBy, userID)
	photo.LikeCount++
	return true, nil
}

func (f *fakePhotoRepo) RemoveLike(_ context.Context, photoID, userID primitive.ObjectID) (bool, error) {
	f.storeOps++
	photo := f.find(photoID)
	if photo == nil || !photo.LikedByUser(userID) {
		return false, nil
	}
	kept := photo.LikedBy[:0]
	for _, id := range photo.LikedBy {
		if id != userID {
			kept = append(kept, id)
		}
	}
	photo.LikedBy = kept
	photo.LikeCount--
	return true, nil
}

func (f *fakePhotoRepo) AppendComment(_ context.Context, photoID primitive.ObjectID, comment models.Comment) (bool, error) {
	f.storeOps++
	photo := f.find(photoID)
	if photo == nil {
		return false, nil
	}
	photo.Comments = append(photo.Comments, comment)
	return true, nil
}

func newTestController() (*Controller, *fakeUserRepo, *fakePhotoRepo) {
	users := &fakeUserRepo{}
	photos := newFakePhotoRepo()
	return New(users, photos, nil), users, photos
}

// newTestRouter wires the endpoints exactly as the route packages do, with
// the auth gate in front of the gated group.
func newTestRouter(ctl *Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.ErrorHandler())

	router.POST("/admin/login", ctl.Login)
	router.POST("/admin/logout", ctl.Logout)
	router.POST("/user", ctl.RegisterUser)

	authed := router.Group("/", middlewares.RequireAuth)
	authed.GET("/user/list", ctl.ListUsers)
	authed.GET("/user/:id", ctl.GetUser)
	authed.GET("/user/:id/extended_detail", ctl.ExtendedDetail)
	authed.GET("/extraUserData/:id", ctl.ExtraUserData)
	authed.GET("/userComments/:id", ctl.UserComments)
	authed.GET("/photosOfUser/:id", ctl.PhotosOfUser)
	authed.POST("/commentsOfPhoto/:photo_id", ctl.AddComment)
	authed.POST("/like_photo", ctl.LikePhoto)
	authed.POST("/unlike_photo", ctl.UnlikePhoto)
	authed.POST("/photo_like_details", ctl.PhotoLikeDetails)
	authed.POST("/favorite_photo", ctl.FavoritePhoto)
	authed.POST("/unfavorite_photo", ctl.UnfavoritePhoto)
	authed.POST("/has_favorited", ctl.HasFavorited)
	authed.GET("/user_favorites", ctl.UserFavorites)

	return router
}

func setTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "controller-test-secret")
}

func authCookie(t *testing.T, userID primitive.ObjectID) *http.Cookie {
	t.Helper()
	token, err := helper.CreateToken(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: helper.TokenCookieName, Value: token}
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
