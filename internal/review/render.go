package review

import (
	"fmt"

	"swim-schedule-manager/internal/model"
)

// Render produces the full view for the frontend. The view is derived
// entirely from session state so a client can re-render from scratch at
// any point.
func (s *Session) Render() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		State:         s.state,
		FileName:      s.fileName,
		Groups:        []GroupView{},
		Attendees:     append([]string{}, s.attendees...),
		Misalignments: append([]model.Misalignment{}, s.misalignments...),
		Results:       append([]model.SendResult{}, s.results...),
	}

	if s.state == StateIdle || s.state == StateFileSelected || s.state == StateExtracting {
		return view
	}

	view.Banner = s.banner()
	if len(s.events) == 0 {
		view.EmptyMessage = model.EmptyScheduleMessage
		return view
	}

	for _, group := range model.GroupByDate(s.events) {
		gv := GroupView{
			Date:        group.Date,
			Label:       model.DisplayDate(group.Date),
			Collapsed:   s.collapsed[group.Date],
			AllSelected: true,
		}
		for _, idx := range group.Indices {
			ev := EventView{
				Index:           idx,
				Selected:        s.selected[idx],
				LocationDisplay: model.LocationDisplay(s.events[idx]),
				PracticeEvent:   s.events[idx],
			}
			if !ev.Selected {
				gv.AllSelected = false
			}
			gv.Events = append(gv.Events, ev)
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}

// SelectedEvents returns the events currently marked for dispatch, in
// schedule order.
func (s *Session) SelectedEvents() []model.PracticeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.PracticeEvent
	for i := range s.events {
		if s.selected[i] {
			out = append(out, s.events[i])
		}
	}
	return out
}

func (s *Session) banner() *Banner {
	for _, m := range s.misalignments {
		if m.Type == model.MisalignmentVerificationError {
			return &Banner{Kind: BannerWarning, Message: m.PrimaryValue}
		}
	}
	if len(s.misalignments) == 0 {
		return &Banner{Kind: BannerAgreement, Message: "Both extraction passes agree."}
	}
	noun := "discrepancies"
	if len(s.misalignments) == 1 {
		noun = "discrepancy"
	}
	return &Banner{
		Kind:    BannerMisaligned,
		Message: fmt.Sprintf("Cross-check found %d %s. Review the highlighted events before sending.", len(s.misalignments), noun),
	}
}
