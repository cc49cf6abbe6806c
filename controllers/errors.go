package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mihaianh/wedding_backend/engine"
)

// abortWithEngineError maps the engine's error taxonomy onto HTTP status
// classes: validation 400, unknown code 404, entitlement 403, storage 500.
func abortWithEngineError(c *gin.Context, err error) {
	var (
		validationErr *engine.ValidationError
		notFoundErr   *engine.NotFoundError
		forbiddenErr  *engine.ForbiddenError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record response"})
	}
}
