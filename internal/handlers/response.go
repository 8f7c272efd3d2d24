package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geodykes/geodykes-backend/internal/pkg/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondAppError maps the error's kind to an HTTP status.
func RespondAppError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.KindValidation:
		RespondError(c, http.StatusBadRequest, "validation", err)
	case apperr.KindIntegrity:
		RespondError(c, http.StatusConflict, "conflict", err)
	case apperr.KindConnectivity:
		RespondError(c, http.StatusServiceUnavailable, "unavailable", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
