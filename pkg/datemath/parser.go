package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

var (
	ordinalRe  = regexp.MustCompile(`(\d)(st|nd|rd|th)`)
	weekdayRe  = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+`)
	numericRe  = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?`)
	timeRange  = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(AM|PM)?\s*(?:-|–|—|to)\s*(\d{1,2}):?(\d{2})?\s*(AM|PM)?`)
	singleTime = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(AM|PM)?`)
)

// dateLayouts are tried in order after the string is cleaned of weekday
// prefixes and ordinal suffixes.
var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// yearlessLayouts cover schedule rows that omit the year.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"1/2",
}

// ParseDate parses a human-readable schedule date into a UTC calendar date.
// Weekday prefixes ("Monday, June 3") and ordinal suffixes ("June 3rd") are
// tolerated; a missing year defaults to the current year.
func ParseDate(raw string) (time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = weekdayRe.ReplaceAllString(cleaned, "")
	cleaned = ordinalRe.ReplaceAllString(cleaned, "$1")
	cleaned = strings.Trim(cleaned, " ,")

	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	currentYear := time.Now().Year()
	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.AddDate(currentYear-t.Year(), 0, 0), nil
		}
	}

	// Last resort: pull numeric month/day(/year) fragments out of the string.
	if m := numericRe.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := currentYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// ParseTimeRange parses a time-range string like "5:00 PM - 6:30 PM" into
// start and end clocks. The end meridiem defaults to the start's when
// omitted. A single time yields a one-hour window.
func ParseTimeRange(raw string) (Clock, Clock, error) {
	if m := timeRange.FindStringSubmatch(raw); m != nil {
		start := toClock(m[1], m[2], coalesce(m[3], m[6]))
		end := toClock(m[4], m[5], coalesce(m[6], m[3]))
		return start, end, nil
	}

	if m := singleTime.FindStringSubmatch(raw); m != nil {
		start := toClock(m[1], m[2], m[3])
		end := Clock{Hour: (start.Hour + 1) % 24, Minute: start.Minute}
		return start, end, nil
	}

	return Clock{}, Clock{}, fmt.Errorf("unrecognized time %q", raw)
}

func toClock(hourStr, minuteStr, meridiem string) Clock {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}

	switch strings.ToUpper(meridiem) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return Clock{Hour: hour, Minute: minute}
}

func coalesce(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// Parser combines schedule date and time strings into absolute event windows
// in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/Los_Angeles".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// EventWindow resolves a (date, time-range) string pair into absolute start
// and end times in the parser's timezone.
func (p *Parser) EventWindow(dateStr, timeStr string) (time.Time, time.Time, error) {
	day, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startClock, endClock, err := ParseTimeRange(timeStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour, startClock.Minute, 0, 0, p.location)
	end := time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour, endClock.Minute, 0, 0, p.location)
	return start, end, nil
}
