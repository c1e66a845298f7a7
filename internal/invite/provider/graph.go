package provider

import (
	"context"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/pkg/msgraph"
)

// Graph adapts the Microsoft Graph client to the invite Provider interface.
// Invites land on the signed-in user's calendar and Graph notifies attendees.
type Graph struct {
	client *msgraph.Client
}

// NewGraph creates a Graph-backed invite provider.
func NewGraph(client *msgraph.Client) *Graph {
	return &Graph{client: client}
}

func (p *Graph) CreateInvite(ctx context.Context, req invite.InviteRequest) error {
	_, err := p.client.CreateEvent(ctx, msgraph.CreateEventRequest{
		Subject:   req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Timezone:  req.Timezone,
		Location:  req.Location,
		Attendees: req.Attendees,
		BodyHTML:  req.BodyHTML,
	})
	return err
}
