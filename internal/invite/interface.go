package invite

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the invite domain.
type UseCase interface {
	// Send dispatches one calendar invite per event and returns per-event
	// results in the same order as the input.
	Send(ctx context.Context, input SendInput) (SendOutput, error)
}

// Provider abstracts the calendar backend that actually creates the invite.
// Microsoft Graph is the default; Google Calendar is the alternative.
type Provider interface {
	CreateInvite(ctx context.Context, req InviteRequest) error
}

// InviteRequest is one calendar invite to create.
type InviteRequest struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Timezone  string
	Location  string
	Attendees []string
	BodyHTML  string
}
