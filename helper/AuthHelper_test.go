package helper

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY", "helper-test-secret")

	userID := primitive.NewObjectID()
	token, err := CreateToken(userID)
	require.NoError(t, err)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseExpiredToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "helper-test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": primitive.NewObjectID().Hex(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWithBadSubject(t *testing.T) {
	t.Setenv("SECRET_KEY", "helper-test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-an-object-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	digest, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", digest)

	assert.NoError(t, CheckPassword(digest, "hunter2"))
	assert.Error(t, CheckPassword(digest, "hunter3"))
}
