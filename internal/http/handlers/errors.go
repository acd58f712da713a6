package handlers

import (
	"errors"
	"log"
	"net/http"

	"airportops/internal/domain"
	"airportops/internal/export"
	"airportops/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP responses. Validation, missing
// and conflicting resources answer with their plain-text message; anything
// unexpected is logged with the request id and reported as a bare 500.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.String(http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		c.String(http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		c.String(http.StatusConflict, err.Error())
	case domain.IsAuth(err):
		c.String(http.StatusUnauthorized, err.Error())
	case errors.Is(err, export.ErrNoData), errors.Is(err, export.ErrUnsupportedType):
		c.String(http.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] request_id=%s err=%v", middleware.GetRequestID(c), err)
		c.String(http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
