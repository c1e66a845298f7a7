package http

import (
	"github.com/gin-gonic/gin"

	"swim-schedule-manager/pkg/response"
)

// GetSession godoc
// @Summary     Get the review session
// @Description Returns the full rendered session view: state, grouped events, attendees, banner, and results.
// @Tags        Review
// @Produce     json
// @Success     200 {object} review.View
// @Router      /api/session [GET]
func (h *handler) GetSession(c *gin.Context) {
	response.OK(c, h.session.Render())
}

// SetSelection godoc
// @Summary     Change event selection
// @Description Sets the include-in-send flag for one event, one date group, or all events.
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       body body selectionReq true "Selection change"
// @Success     200 {object} review.View
// @Failure     400 {object} response.Detail "Bad scope or index"
// @Failure     409 {object} response.Detail "Session busy"
// @Router      /api/session/selection [POST]
func (h *handler) SetSelection(c *gin.Context) {
	req, err := h.processSelectionReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch req.Scope {
	case scopeEvent:
		err = h.session.SetEventSelected(*req.Index, req.Selected)
	case scopeDate:
		err = h.session.SetDateSelected(req.Date, req.Selected)
	case scopeAll:
		err = h.session.SetAllSelected(req.Selected)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, h.session.Render())
}

// UpdateEvent godoc
// @Summary     Edit an event
// @Description Updates an event's time range and/or location code in place; the title is re-derived.
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       index path int            true "Event index"
// @Param       body  body updateEventReq true "Fields to update"
// @Success     200 {object} review.View
// @Failure     400 {object} response.Detail "Bad index or empty time"
// @Failure     409 {object} response.Detail "Session busy"
// @Router      /api/session/events/{index} [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	req, err := h.processUpdateEventReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Time != nil {
		if err := h.session.EditTime(req.index, *req.Time); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.LocationCode != nil {
		if err := h.session.EditLocation(req.index, *req.LocationCode); err != nil {
			respondError(c, err)
			return
		}
	}

	response.OK(c, h.session.Render())
}

// AddAttendee godoc
// @Summary     Add an attendee
// @Description Validates and appends an email address to the attendee list.
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       body body attendeeReq true "Attendee email"
// @Success     200 {object} review.View
// @Failure     400 {object} response.Detail "Invalid email address"
// @Failure     409 {object} response.Detail "Duplicate attendee or session busy"
// @Router      /api/session/attendees [POST]
func (h *handler) AddAttendee(c *gin.Context) {
	req, err := h.processAttendeeReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.session.AddAttendee(req.Email); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, h.session.Render())
}

// RemoveAttendee godoc
// @Summary     Remove an attendee
// @Description Removes the attendee at the given index, preserving the order of the rest.
// @Tags        Review
// @Produce     json
// @Param       index path int true "Attendee index"
// @Success     200 {object} review.View
// @Failure     400 {object} response.Detail "Bad index"
// @Failure     409 {object} response.Detail "Session busy"
// @Router      /api/session/attendees/{index} [DELETE]
func (h *handler) RemoveAttendee(c *gin.Context) {
	index, err := indexParam(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.session.RemoveAttendee(index); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, h.session.Render())
}

// ToggleGroup godoc
// @Summary     Collapse or expand a date group
// @Tags        Review
// @Accept      json
// @Produce     json
// @Param       body body toggleGroupReq true "Date group"
// @Success     200 {object} review.View
// @Failure     409 {object} response.Detail "Session busy"
// @Router      /api/session/groups/toggle [POST]
func (h *handler) ToggleGroup(c *gin.Context) {
	req, err := h.processToggleGroupReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.session.ToggleCollapse(req.Date); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, h.session.Render())
}

// Reset godoc
// @Summary     Reset the session
// @Description Discards the current file, events, attendees, and results.
// @Tags        Review
// @Produce     json
// @Success     200 {object} review.View
// @Failure     409 {object} response.Detail "Session busy"
// @Router      /api/session/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	if err := h.session.Reset(); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, h.session.Render())
}

// LoadSample godoc
// @Summary     Load sample events
// @Description Installs a built-in sample schedule for local development. Disabled in production.
// @Tags        Review
// @Produce     json
// @Success     200 {object} review.View
// @Failure     404 {object} response.Detail "Disabled"
// @Router      /api/session/sample [POST]
func (h *handler) LoadSample(c *gin.Context) {
	if err := h.session.InjectEvents(sampleEvents(), nil); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, h.session.Render())
}
