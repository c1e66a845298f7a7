package invite

import "swim-schedule-manager/internal/model"

// SendInput carries the selected events and the attendee list for one
// dispatch.
type SendInput struct {
	Events    []model.PracticeEvent
	Attendees []string
}

// SendOutput holds per-event results, index-aligned with the input events.
type SendOutput struct {
	Results []model.SendResult
}
