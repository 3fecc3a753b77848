package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"perfume-shop/database"
	"perfume-shop/models"
	"perfume-shop/services"
)

const (
	detailStoreUnavailable = "Database not configured"
	detailInternal         = "Internal server error"
)

func respondError(c *gin.Context, err error) {
	status, detail := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Detail: detail})
}

func errorStatus(err error) (int, string) {
	var notFound *services.NotFoundError
	switch {
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusInternalServerError, detailStoreUnavailable
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Resource + " not found"
	case errors.Is(err, services.ErrCartEmpty):
		return http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidState):
		return http.StatusBadRequest, clientDetail(err)
	default:
		return http.StatusInternalServerError, detailInternal
	}
}

// clientDetail drops the sentinel prefix from a wrapped validation error.
func clientDetail(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{services.ErrInvalidInput, services.ErrInvalidState} {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}

func badRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Detail: detail})
}
