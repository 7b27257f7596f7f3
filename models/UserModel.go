package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. FavoritePhotos is a set of photo ids; the
// slice never holds duplicates because favoriting is a guarded set insert.
type User struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	LoginName      string               `json:"login_name" bson:"login_name" validate:"required"`
	PasswordDigest string               `json:"-" bson:"password_digest"`
	FirstName      string               `json:"first_name" bson:"first_name" validate:"required"`
	LastName       string               `json:"last_name" bson:"last_name" validate:"required"`
	Location       string               `json:"location" bson:"location"`
	Description    string               `json:"description" bson:"description"`
	Occupation     string               `json:"occupation" bson:"occupation"`
	LastActivity   string               `json:"last_activity" bson:"last_activity"`
	FavoritePhotos []primitive.ObjectID `json:"favorite_photos" bson:"favorite_photos"`
}

// HasFavorited reports whether the photo id is in the user's favorite set.
func (u *User) HasFavorited(photoID primitive.ObjectID) bool {
	for _, id := range u.FavoritePhotos {
		if id == photoID {
			return true
		}
	}
	return false
}
