package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError writes domain errors with their stable bodies and anything else as a 500
func respondError(ctx *gin.Context, err error, internalMessage string) {
	_ = ctx.Error(err)

	var domainErr *models.DomainError
	if !errors.As(err, &domainErr) {
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalMessage})
		return
	}

	switch domainErr.Kind {
	case models.KindValidation:
		ctx.JSON(domainErr.Status, models.ValidationErrorResponse{Errors: []string{models.MsgValidationErrors}})
	default:
		ctx.JSON(domainErr.Status, models.ErrorResponse{Error: domainErr.Message})
	}
}

// pathID parses an integer path parameter
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
