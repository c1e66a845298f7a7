package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/model"
)

// Send dispatches one calendar invite per event. A failed event never stops
// the rest; its result carries the provider's error text verbatim. Results
// correspond to the input events by position.
func (uc *implUseCase) Send(ctx context.Context, input invite.SendInput) (invite.SendOutput, error) {
	if len(input.Events) == 0 {
		return invite.SendOutput{}, invite.ErrNoEvents
	}
	if len(input.Attendees) == 0 {
		return invite.SendOutput{}, invite.ErrNoAttendees
	}

	uc.l.Infof(ctx, "Send: dispatching %d events to %d attendees", len(input.Events), len(input.Attendees))

	results := make([]model.SendResult, 0, len(input.Events))
	for _, event := range input.Events {
		results = append(results, uc.sendOne(ctx, event, input.Attendees))
	}

	return invite.SendOutput{Results: results}, nil
}

func (uc *implUseCase) sendOne(ctx context.Context, event model.PracticeEvent, attendees []string) model.SendResult {
	title := event.Title
	if title == "" {
		title = model.DeriveTitle(event)
	}
	result := model.SendResult{Event: title}

	start, end, err := uc.dateMath.EventWindow(event.Date, event.Time)
	if err != nil {
		uc.l.Warnf(ctx, "Send: unparseable date/time for %q: %v", title, err)
		result.Error = fmt.Sprintf("Could not parse date/time: %s %s", event.Date, event.Time)
		return result
	}

	err = uc.provider.CreateInvite(ctx, invite.InviteRequest{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Timezone:  uc.timezone,
		Location:  eventLocation(event),
		Attendees: attendees,
		BodyHTML:  eventBody(event),
	})
	if err != nil {
		uc.l.Errorf(ctx, "Send: provider failed for %q: %v", title, err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	return result
}

func eventLocation(event model.PracticeEvent) string {
	if event.LocationName == "" {
		return ""
	}
	if event.LocationAddress == "" {
		return event.LocationName
	}
	return event.LocationName + ", " + event.LocationAddress
}

// eventBody renders the invite description: swimmer, venue, and a dry-land
// note when the practice includes conditioning.
func eventBody(event model.PracticeEvent) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Swim practice for %s", html.EscapeString(event.Child)))
	if event.LocationName != "" {
		lines = append(lines, html.EscapeString(event.LocationName))
	}
	if event.LocationAddress != "" {
		lines = append(lines, html.EscapeString(event.LocationAddress))
	}
	if event.DryLand {
		lines = append(lines, "Includes dry-land conditioning.")
	}
	return "<p>" + strings.Join(lines, "<br>") + "</p>"
}
