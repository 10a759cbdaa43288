package delivery

import (
	"errors"
	"net/http"
	"time"

	"product_service/internal/domain"
	"product_service/internal/validation"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Path       string    `json:"path"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}

func writeError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{
		Path:       c.Request.URL.Path,
		Message:    message,
		StatusCode: statusCode,
		Timestamp:  time.Now(),
	})
}

// mapErrorToStatus converts domain and validation errors to HTTP statuses.
// Anything unclassified is an infrastructure fault and surfaces as 500.
func mapErrorToStatus(err error) int {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var invalid *validation.ValidationError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
