package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/pkg/response"
)

// SendInvites godoc
// @Summary     Send calendar invites
// @Description Dispatches one calendar invite per selected event and returns per-event results.
// @Tags        Invite
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Events and attendees"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Detail "No events selected or no attendees specified"
// @Failure     401 {object} response.Detail "Not signed in"
// @Failure     409 {object} response.Detail "Another request is in progress"
// @Failure     500 {object} response.Detail "Dispatch failed"
// @Router      /api/send-invites [POST]
func (h *handler) SendInvites(c *gin.Context) {
	ctx := c.Request.Context()

	if h.auth != nil && !h.auth.SignedIn() {
		response.Unauthorized(c, invite.ErrNotSignedIn.Error())
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// The session transition is opportunistic: the wire contract also serves
	// direct API callers that never went through the review flow.
	tracking := true
	if err := h.session.BeginSend(); err != nil {
		if errors.Is(err, review.ErrBusy) {
			response.Conflict(c, err.Error())
			return
		}
		tracking = false
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		if tracking {
			h.session.FailSend()
		}
		if errors.Is(err, invite.ErrNoEvents) || errors.Is(err, invite.ErrNoAttendees) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	if tracking {
		if err := h.session.FinishSend(output.Results); err != nil {
			h.l.Errorf(ctx, "session.FinishSend: %v", err)
			response.InternalError(c, err)
			return
		}
	}

	response.OK(c, newSendResp(output))
}
