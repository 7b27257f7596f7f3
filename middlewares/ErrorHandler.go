package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"photoshare/apperr"
)

// ErrorHandler renders the first error a handler attached to the context.
// Taxonomy errors keep their status and client message; internal causes are
// logged here and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors[0].Err

		var apiErr *apperr.Error
		if errors.As(err, &apiErr) {
			if apiErr.HTTPStatus() >= http.StatusInternalServerError {
				logrus.WithFields(logrus.Fields{
					"path":  c.Request.URL.Path,
					"cause": apiErr.Error(),
				}).Error("request failed")
			}
			c.JSON(apiErr.HTTPStatus(), gin.H{"error": apiErr.Message()})
			return
		}

		logrus.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"cause": err.Error(),
		}).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
