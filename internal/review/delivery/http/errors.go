package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/pkg/response"
)

// respondError maps session errors onto HTTP statuses. Busy and duplicate
// conditions are conflicts; everything else a session operation rejects is a
// bad request.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrBusy), errors.Is(err, review.ErrDuplicateAttendee):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		response.BadRequest(c, err.Error())
	}
}
