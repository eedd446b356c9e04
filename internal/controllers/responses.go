package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-place-api/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondWithError converts a service error into the API error envelope
func respondWithError(ctx *gin.Context, err error) {
	var notFound *models.NotFoundError
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, notFound.Message))
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, validationErr.Messages...))
	default:
		log.WithFields(log.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.Request.URL.Path,
		}).WithError(err).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}

// respondWithBadRequest answers with a BAD_REQUEST envelope
func respondWithBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// parseIDParam reads the numeric :id path parameter.
// It writes the 400 response itself and returns false when the ID is not a number.
func parseIDParam(ctx *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		respondWithBadRequest(ctx, "Invalid "+resource+" ID format")
		return 0, false
	}
	return uint(id), true
}
