package model

import (
	"strings"

	"swim-schedule-manager/pkg/datemath"
)

// PracticeEvent is one practice for one child on one date, with any same-day
// dry-land segment already merged in.
type PracticeEvent struct {
	Date            string `json:"date"`            // human-readable, day-ordered
	Child           string `json:"child"`           // one of Roster
	Time            string `json:"time"`            // range with explicit AM/PM on both ends
	LocationCode    string `json:"locationCode"`    // short venue code, see Venues
	LocationName    string `json:"locationName"`    // derived, blank when code unknown
	LocationAddress string `json:"locationAddress"` // derived, blank when code unknown
	DryLand         bool   `json:"dryLand"`
	Title           string `json:"title"` // derived, never independently authored
}

// MisalignmentType classifies a disagreement between the two extraction passes.
type MisalignmentType string

const (
	MisalignmentTimeMismatch       MisalignmentType = "time_mismatch"
	MisalignmentLocationMismatch   MisalignmentType = "location_mismatch"
	MisalignmentMissingInSecondary MisalignmentType = "missing_in_secondary"
	MisalignmentMissingInPrimary   MisalignmentType = "missing_in_primary"
	MisalignmentTimeFormat         MisalignmentType = "time_format"
	MisalignmentVerificationError  MisalignmentType = "verification_error"
)

// Misalignment records one disagreement between the primary and secondary
// extraction passes, surfaced for user review rather than silently resolved.
type Misalignment struct {
	Date           string           `json:"date"`
	Child          *string          `json:"child"` // null when not tied to one child
	Type           MisalignmentType `json:"type"`
	PrimaryValue   string           `json:"primaryValue"`
	SecondaryValue string           `json:"secondaryValue"`
}

// SendResult is the per-event outcome of an invite dispatch.
type SendResult struct {
	Event   string `json:"event"` // the event title submitted
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DeriveTitle computes the display title from an event's fields:
// "{child} @{locationCode} {time}", with " DL" appended for dry-land merges.
// It is the only source of titles; every mutation re-runs it.
func DeriveTitle(e PracticeEvent) string {
	title := e.Child + " @" + e.LocationCode + " " + e.Time
	if e.DryLand {
		title += " DL"
	}
	return title
}

// ApplyDerived recomputes all derived fields (title, location name/address)
// in place. Unknown location codes resolve to blank name and address.
func ApplyDerived(e *PracticeEvent) {
	venue, ok := Venues[e.LocationCode]
	if ok {
		e.LocationName = venue.Name
		e.LocationAddress = venue.Address
	} else {
		e.LocationName = ""
		e.LocationAddress = ""
	}
	e.Title = DeriveTitle(*e)
}

// LocationDisplay returns the venue name for rendering, or "TBD" when the
// location code is unresolved.
func LocationDisplay(e PracticeEvent) string {
	if e.LocationName == "" {
		return "TBD"
	}
	return e.LocationName
}

// DisplayDate returns the group label for a date string: weekday-prefixed
// when the date parses, the raw string unchanged otherwise.
func DisplayDate(raw string) string {
	day, err := datemath.ParseDate(raw)
	if err != nil {
		return raw
	}
	weekday := day.Weekday().String()
	if strings.HasPrefix(strings.ToLower(raw), strings.ToLower(weekday)) {
		return raw
	}
	return weekday + ", " + raw
}

// DateGroup is one date's worth of events, by stable index into the source
// slice.
type DateGroup struct {
	Date    string
	Indices []int
}

// GroupByDate groups events by date preserving first-seen date order. The
// extraction gateway is responsible for chronological ordering; no re-sort
// happens here.
func GroupByDate(events []PracticeEvent) []DateGroup {
	var groups []DateGroup
	byDate := make(map[string]int)

	for i, e := range events {
		gi, ok := byDate[e.Date]
		if !ok {
			gi = len(groups)
			byDate[e.Date] = gi
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[gi].Indices = append(groups[gi].Indices, i)
	}
	return groups
}
