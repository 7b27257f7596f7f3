package helper

import "golang.org/x/crypto/bcrypt"

// Last-activity markers shown on the user list. The photo marker carries the
// file name so the frontend can render a thumbnail.
const (
	ActivityRegistered  = "Registered as a user"
	ActivityLoggedIn    = "Logged in"
	ActivityLoggedOut   = "Logged out"
	ActivityCommented   = "Added a comment"
	activityPhotoPrefix = "photo:"
)

// PhotoActivity builds the marker recorded when a user uploads a photo.
func PhotoActivity(fileName string) string {
	return activityPhotoPrefix + fileName
}

// HashPassword produces the stored credential digest.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword compares a candidate password against the stored digest.
func CheckPassword(digest, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
