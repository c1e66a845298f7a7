package invite

import "errors"

var (
	ErrNoEvents    = errors.New("No events selected")
	ErrNoAttendees = errors.New("No attendees specified")
	ErrNotSignedIn = errors.New("Not signed in. Please sign in with Microsoft first.")
)
