package review

import "errors"

var (
	ErrBusy              = errors.New("another request is already in progress")
	ErrNoFile            = errors.New("no file selected")
	ErrNotExtracting     = errors.New("no extraction in progress")
	ErrNotSending        = errors.New("no dispatch in progress")
	ErrNothingToSend     = errors.New("nothing to send from the current state")
	ErrEventIndex        = errors.New("no event at that index")
	ErrAttendeeIndex     = errors.New("no attendee at that index")
	ErrInvalidAttendee   = errors.New("enter a valid email address")
	ErrDuplicateAttendee = errors.New("this attendee is already on the list")
	ErrEmptyTime         = errors.New("time cannot be empty")
)
