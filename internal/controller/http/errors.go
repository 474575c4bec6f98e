package http

import (
	"errors"
	"net/http"
	"strings"

	"portfolio-api/internal/entity"
	"portfolio-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, entity.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": msg}. Internal failures are logged and hidden
// behind a generic message.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if log != nil {
			log.Error("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": publicMessage(err)})
}

// publicMessage drops the sentinel prefix ("invalid input: ") so clients see
// only the detail.
func publicMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{entity.ErrInvalidInput, entity.ErrNotFound, entity.ErrUnauthorized, entity.ErrConflict} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			msg = strings.TrimPrefix(msg, prefix)
			break
		}
	}
	if msg == "" {
		return err.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": publicMessage(entity.ValidationError(err))})
}
