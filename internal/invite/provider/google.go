package provider

import (
	"context"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/pkg/gcalendar"
)

// Google adapts the Google Calendar client to the invite Provider interface.
// It is the alternative backend for households without a Microsoft account.
type Google struct {
	client *gcalendar.Client
}

// NewGoogle creates a Google-Calendar-backed invite provider.
func NewGoogle(client *gcalendar.Client) *Google {
	return &Google{client: client}
}

func (p *Google) CreateInvite(ctx context.Context, req invite.InviteRequest) error {
	_, err := p.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     req.Title,
		Description: req.BodyHTML,
		Location:    req.Location,
		Attendees:   req.Attendees,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Timezone:    req.Timezone,
	})
	return err
}
