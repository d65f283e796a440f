package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mygroup/simple-community/pkg/apperr"
)

// ErrorBody is the wire shape every failed request resolves to.
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Body builds the error body for a typed domain failure.
func Body(e *apperr.Error) ErrorBody {
	return ErrorBody{Type: string(e.Kind), Message: e.Message}
}

// Err translates a failure into its terminal HTTP response. Typed domain
// failures map to their taxonomy status and {type, message} body; anything
// else is an unexpected failure and surfaces as a generic 500, logged but
// not translated.
func Err(c *gin.Context, logger *logrus.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		c.JSON(e.Kind.Status(), Body(e))
		return
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
			"error":      err.Error(),
		}).Error("unexpected failure")
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// AbortErr is Err for middleware: it also stops the handler chain.
func AbortErr(c *gin.Context, logger *logrus.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		c.AbortWithStatusJSON(e.Kind.Status(), Body(e))
		return
	}
	if logger != nil {
		logger.WithField("error", err.Error()).Error("unexpected failure")
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
