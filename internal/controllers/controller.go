// Package controllers implements the HTTP handlers for the budget API.
package controllers

import (
	"errors"
	"net/http"

	"github.com/envelope-budget/backend/internal/httputil"
	"github.com/envelope-budget/backend/internal/models"
	"github.com/envelope-budget/backend/internal/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Store store.Store
}

type httpError struct {
	Error string `json:"error" example:"there is no envelope matching your query"`
}

type messageResponse struct {
	Message string `json:"message" example:"envelope deleted"`
}

// URIID is the ID of a resource in the path.
type URIID struct {
	ID uint `uri:"id" binding:"required" example:"1"` // ID of the resource
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abort writes the error response for err. Server errors are logged with
// the request id and their cause.
func abort(c *gin.Context, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		cause := models.Cause(err)
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", cause, cause.Error())
	}

	c.JSON(code, httpError{
		Error: err.Error(),
	})
}

// bindURI binds the path parameters. All binding errors are reported as
// ErrInvalidID since the path only contains IDs.
func bindURI(c *gin.Context, uri any) error {
	if err := c.ShouldBindUri(uri); err != nil {
		return httputil.ErrInvalidID
	}

	return nil
}
