package http

import (
	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/model"
)

type sendReq struct {
	Events    []model.PracticeEvent `json:"events"`
	Attendees []string              `json:"attendees"`
}

func (r sendReq) toInput() invite.SendInput {
	return invite.SendInput{
		Events:    r.Events,
		Attendees: r.Attendees,
	}
}

// processSendReq binds the dispatch request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
