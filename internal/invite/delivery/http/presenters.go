package http

import (
	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/model"
)

type sendResp struct {
	Results []model.SendResult `json:"results"`
}

func newSendResp(output invite.SendOutput) sendResp {
	results := output.Results
	if results == nil {
		results = []model.SendResult{}
	}
	return sendResp{Results: results}
}
