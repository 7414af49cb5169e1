package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorPage renders the generic server error page for any error a handler
// attached with c.Error without writing a response itself.
func ErrorPage(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			log.WithFields(logrus.Fields{
				"request_id": GetRequestID(c),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
			}).WithError(e.Err).Error("request failed")
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, errorPage(c))
	}
}

func errorPage(c *gin.Context) gin.H {
	return gin.H{
		"page":       "error",
		"brand":      "Tourism",
		"message":    "Internal server error",
		"request_id": GetRequestID(c),
	}
}
