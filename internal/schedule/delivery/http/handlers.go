package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/pkg/response"
)

// ParsePDF godoc
// @Summary     Parse a schedule PDF
// @Description Uploads a practice schedule PDF and returns extracted events plus any cross-check misalignments.
// @Tags        Schedule
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Schedule PDF"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Detail "Not a PDF file"
// @Failure     409 {object} response.Detail "Another request is in progress"
// @Failure     429 {object} response.Detail "Too many uploads"
// @Failure     500 {object} response.Detail "Extraction failed"
// @Router      /api/parse-pdf [POST]
func (h *handler) ParsePDF(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.limiter.Allow() {
		response.TooManyRequests(c, "Too many uploads. Please wait a moment and try again.")
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.session.SelectFile(req.fileName); err != nil {
		response.Conflict(c, err.Error())
		return
	}
	if err := h.session.BeginExtraction(); err != nil {
		if errors.Is(err, review.ErrBusy) {
			response.Conflict(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.session.FailExtraction()
		response.InternalError(c, err)
		return
	}

	if err := h.session.FinishExtraction(output.Events, output.Misalignments); err != nil {
		h.l.Errorf(ctx, "session.FinishExtraction: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}

func isPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}
