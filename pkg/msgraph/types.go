package msgraph

import "time"

const (
	// DefaultBaseURL is the Microsoft Graph v1.0 endpoint
	DefaultBaseURL = "https://graph.microsoft.com/v1.0"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// graphDateTimeLayout is the local date-time format Graph expects when a
	// timeZone field accompanies it.
	graphDateTimeLayout = "2006-01-02T15:04:05"
)

// --- Graph wire types ---

type graphEvent struct {
	Subject         string          `json:"subject"`
	Start           graphDateTime   `json:"start"`
	End             graphDateTime   `json:"end"`
	Attendees       []graphAttendee `json:"attendees"`
	IsOnlineMeeting bool            `json:"isOnlineMeeting"`
	Body            graphBody       `json:"body"`
	Location        *graphLocation  `json:"location,omitempty"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphAttendee struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
	Type         string            `json:"type"`
}

type graphEmailAddress struct {
	Address string `json:"address"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphLocation struct {
	DisplayName string `json:"displayName"`
}

type graphCreatedEvent struct {
	ID      string `json:"id"`
	WebLink string `json:"webLink"`
}

type graphErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
