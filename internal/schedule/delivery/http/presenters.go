package http

import (
	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/schedule"
)

type parseResp struct {
	Events        []model.PracticeEvent `json:"events"`
	Misalignments []model.Misalignment  `json:"misalignments,omitempty"`
}

func newParseResp(output schedule.ParseOutput) parseResp {
	events := output.Events
	if events == nil {
		events = []model.PracticeEvent{}
	}
	return parseResp{
		Events:        events,
		Misalignments: output.Misalignments,
	}
}
