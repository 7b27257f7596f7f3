package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/apperr"
	"photoshare/helper"
	"photoshare/models"
	"photoshare/repository"
)

type registrationRequest struct {
	LoginName   string `json:"login_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

// RegisterUser creates a new account. Open route: registration bypasses the
// auth gate.
func (ctl *Controller) RegisterUser(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(err.Error()))
		return
	}

	if err := validate.Struct(req); err != nil {
		c.Error(apperr.Validation(err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	_, err := ctl.Users.FindByLoginName(ctx, req.LoginName)
	if err == nil {
		c.Error(apperr.Validation("a user already exists with that login name"))
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.Internal("an error occurred during registration", err))
		return
	}

	digest, err := helper.HashPassword(req.Password)
	if err != nil {
		c.Error(apperr.Internal("an error occurred during registration", err))
		return
	}

	user := models.User{
		ID:             primitive.NewObjectID(),
		LoginName:      req.LoginName,
		PasswordDigest: digest,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Location:       req.Location,
		Description:    req.Description,
		Occupation:     req.Occupation,
		LastActivity:   helper.ActivityRegistered,
		FavoritePhotos: []primitive.ObjectID{},
	}

	if err := ctl.Users.Insert(ctx, &user); err != nil {
		c.Error(apperr.Internal("an error occurred during registration", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"_id":        user.ID,
		"login_name": user.LoginName,
	})
}

type loginRequest struct {
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// Login checks the credentials, sets the session cookie, and records the
// activity. Open route.
func (ctl *Controller) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LoginName == "" {
		c.Error(apperr.Validation("please provide a non-empty login name"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.Users.FindByLoginName(ctx, req.LoginName)
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.Validation("no user found with the provided login name"))
		return
	}
	if err != nil {
		c.Error(apperr.Internal("an error occurred during login", err))
		return
	}

	if err := helper.CheckPassword(user.PasswordDigest, req.Password); err != nil {
		c.Error(apperr.Validation("incorrect password provided"))
		return
	}

	token, err := helper.CreateToken(user.ID)
	if err != nil {
		c.Error(apperr.Internal("an error occurred during login", err))
		return
	}

	if err := ctl.Users.SetLastActivity(ctx, user.ID, helper.ActivityLoggedIn); err != nil {
		c.Error(apperr.Internal("an error occurred during login", err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(helper.TokenCookieName, token, int(helper.TokenLifetime.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"_id":        user.ID,
		"first_name": user.FirstName,
	})
}

// Logout destroys the session by expiring the cookie. Open route so a user
// with a stale token can always log out; still 400 when no session cookie is
// present at all.
func (ctl *Controller) Logout(c *gin.Context) {
	tokenString, err := c.Cookie(helper.TokenCookieName)
	if err != nil || tokenString == "" {
		c.Error(apperr.Validation("no user is currently logged in"))
		return
	}

	if userID, parseErr := helper.ParseToken(tokenString); parseErr == nil {
		ctx, cancel := requestContext(c)
		defer cancel()
		if err := ctl.Users.SetLastActivity(ctx, userID, helper.ActivityLoggedOut); err != nil {
			c.Error(apperr.Internal("an error occurred during logout", err))
			return
		}
	}

	c.SetCookie(helper.TokenCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

type userListView struct {
	ID           primitive.ObjectID `json:"_id"`
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	LastActivity string             `json:"last_activity"`
}

// ListUsers returns the name and latest activity of every user.
func (ctl *Controller) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := ctl.Users.List(ctx)
	if err != nil {
		c.Error(apperr.Internal("error fetching users", err))
		return
	}

	views := make([]userListView, len(users))
	for i, user := range users {
		views[i] = userListView{
			ID:           user.ID,
			FirstName:    user.FirstName,
			LastName:     user.LastName,
			LastActivity: user.LastActivity,
		}
	}

	c.JSON(http.StatusOK, views)
}

type userDetailView struct {
	ID          primitive.ObjectID `json:"_id"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Location    string             `json:"location"`
	Description string             `json:"description"`
	Occupation  string             `json:"occupation"`
}

// GetUser returns one user's profile fields.
func (ctl *Controller) GetUser(c *gin.Context) {
	userID, ok := pathObjectID(c, "id")
	if !ok {
		c.Error(apperr.Validation("invalid user ID format"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.Users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.Error(apperr.NotFound("no user found"))
		return
	}
	if err != nil {
		c.Error(apperr.Internal("error fetching the user", err))
		return
	}

	c.JSON(http.StatusOK, userDetailView{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Location:    user.Location,
		Description: user.Description,
		Occupation:  user.Occupation,
	})
}
