package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoshare/helper"
)

func gatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth, func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(primitive.ObjectID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.Hex()})
	})
	return router
}

func TestRequireAuthNoCookie(t *testing.T) {
	t.Setenv("SECRET_KEY", "gate-test-secret")
	router := gatedRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "gate-test-secret")
	router := gatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helper.TokenCookieName, Value: "not-a-jwt"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "gate-test-secret")
	router := gatedRouter()

	userID := primitive.NewObjectID()
	token, err := helper.CreateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helper.TokenCookieName, Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), userID.Hex())
}

func TestRequireAuthWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "gate-test-secret")
	token, err := helper.CreateToken(primitive.NewObjectID())
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "a-different-secret")
	router := gatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helper.TokenCookieName, Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
