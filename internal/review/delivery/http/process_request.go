package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	scopeEvent = "event"
	scopeDate  = "date"
	scopeAll   = "all"
)

type selectionReq struct {
	Scope    string `json:"scope"`
	Index    *int   `json:"index"`
	Date     string `json:"date"`
	Selected bool   `json:"selected"`
}

func (r selectionReq) validate() error {
	switch r.Scope {
	case scopeEvent:
		if r.Index == nil {
			return errors.New("index is required for event scope")
		}
	case scopeDate:
		if r.Date == "" {
			return errors.New("date is required for date scope")
		}
	case scopeAll:
	default:
		return errors.New("scope must be event, date, or all")
	}
	return nil
}

type updateEventReq struct {
	index        int
	Time         *string `json:"time"`
	LocationCode *string `json:"locationCode"`
}

func (r updateEventReq) validate() error {
	if r.Time == nil && r.LocationCode == nil {
		return errors.New("nothing to update")
	}
	return nil
}

type attendeeReq struct {
	Email string `json:"email"`
}

type toggleGroupReq struct {
	Date string `json:"date"`
}

func (r toggleGroupReq) validate() error {
	if r.Date == "" {
		return errors.New("date is required")
	}
	return nil
}

func (h *handler) processSelectionReq(c *gin.Context) (selectionReq, error) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateEventReq(c *gin.Context) (updateEventReq, error) {
	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	index, err := indexParam(c)
	if err != nil {
		return req, err
	}
	req.index = index
	return req, req.validate()
}

func (h *handler) processAttendeeReq(c *gin.Context) (attendeeReq, error) {
	var req attendeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processToggleGroupReq(c *gin.Context) (toggleGroupReq, error) {
	var req toggleGroupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func indexParam(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, errors.New("index must be a number")
	}
	return index, nil
}
