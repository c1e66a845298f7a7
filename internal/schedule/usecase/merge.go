package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/schedule"
	"swim-schedule-manager/pkg/datemath"
)

var (
	meridiemRe = regexp.MustCompile(`(?i)[ap]\.?m\.?`)
	rangeSepRe = regexp.MustCompile(`(?i)\s*(?:-|–|—|to)\s*`)
)

// buildEvents turns raw model segments into merged practice events. Rest-day
// rows and unknown children are dropped; a pool row and a dry-land row for
// the same child on the same day merge into one event spanning the earliest
// start to the latest end.
func buildEvents(segments []schedule.Segment) []model.PracticeEvent {
	type bucket struct {
		pool    *schedule.Segment
		dryLand *schedule.Segment
		order   int
	}

	buckets := make(map[string]*bucket)
	var keys []string

	for i := range segments {
		seg := segments[i]
		if seg.Kind == schedule.KindNone || !model.KnownChild(seg.Child) || strings.TrimSpace(seg.Time) == "" {
			continue
		}

		key := segmentKey(seg.Date, seg.Child)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{order: len(keys)}
			buckets[key] = b
			keys = append(keys, key)
		}
		if seg.Kind == schedule.KindDryLand {
			if b.dryLand == nil {
				b.dryLand = &segments[i]
			}
		} else {
			if b.pool == nil {
				b.pool = &segments[i]
			}
		}
	}

	events := make([]model.PracticeEvent, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]

		base := b.pool
		if base == nil {
			base = b.dryLand
		}

		event := model.PracticeEvent{
			Date:         strings.TrimSpace(base.Date),
			Child:        canonicalChild(base.Child),
			Time:         strings.TrimSpace(base.Time),
			LocationCode: strings.ToUpper(strings.TrimSpace(base.Location)),
			DryLand:      b.dryLand != nil,
		}

		if b.pool != nil && b.dryLand != nil {
			if merged, ok := mergeTimeRanges(b.pool.Time, b.dryLand.Time); ok {
				event.Time = merged
			}
		}

		model.ApplyDerived(&event)
		events = append(events, event)
	}

	sortEvents(events)
	return events
}

// missingMeridiemMisalignments flags events whose time lacks an explicit
// AM/PM marker on every endpoint. The time is kept exactly as extracted;
// dispatch would otherwise resolve an ambiguous hour on its own, so the
// defect is surfaced for review instead.
func missingMeridiemMisalignments(events []model.PracticeEvent) []model.Misalignment {
	var out []model.Misalignment
	for _, e := range events {
		if hasExplicitMeridiems(e.Time) {
			continue
		}
		child := e.Child
		out = append(out, model.Misalignment{
			Date:         e.Date,
			Child:        &child,
			Type:         model.MisalignmentTimeFormat,
			PrimaryValue: e.Time,
		})
	}
	return out
}

func hasExplicitMeridiems(timeRange string) bool {
	for _, part := range rangeSepRe.Split(timeRange, -1) {
		if !meridiemRe.MatchString(part) {
			return false
		}
	}
	return true
}

// mergeTimeRanges combines two time ranges into one spanning the earliest
// start to the latest end. Returns false when either range fails to parse,
// in which case the caller keeps the pool row's time.
func mergeTimeRanges(a, b string) (string, bool) {
	aStart, aEnd, errA := datemath.ParseTimeRange(a)
	bStart, bEnd, errB := datemath.ParseTimeRange(b)
	if errA != nil || errB != nil {
		return "", false
	}

	start := aStart
	if clockBefore(bStart, start) {
		start = bStart
	}
	end := aEnd
	if clockBefore(end, bEnd) {
		end = bEnd
	}

	return formatClock(start) + " - " + formatClock(end), true
}

func clockBefore(a, b datemath.Clock) bool {
	if a.Hour != b.Hour {
		return a.Hour < b.Hour
	}
	return a.Minute < b.Minute
}

func formatClock(c datemath.Clock) string {
	meridiem := "AM"
	hour := c.Hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, meridiem)
}

// sortEvents orders events chronologically by date, then by start time.
// Events whose date does not parse keep their relative document order and
// sort after dated ones.
func sortEvents(events []model.PracticeEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		di, errI := datemath.ParseDate(events[i].Date)
		dj, errJ := datemath.ParseDate(events[j].Date)
		if errI != nil || errJ != nil {
			return errI == nil && errJ != nil
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}

		si, _, errI := datemath.ParseTimeRange(events[i].Time)
		sj, _, errJ := datemath.ParseTimeRange(events[j].Time)
		if errI != nil || errJ != nil {
			return false
		}
		return clockBefore(si, sj)
	})
}

func segmentKey(date, child string) string {
	d := strings.ToLower(strings.TrimSpace(date))
	if parsed, err := datemath.ParseDate(date); err == nil {
		d = parsed.Format("2006-01-02")
	}
	return d + "|" + strings.ToLower(strings.TrimSpace(child))
}

// canonicalChild maps a case-variant name back to its roster spelling.
func canonicalChild(name string) string {
	for _, child := range model.Roster {
		if strings.EqualFold(child, strings.TrimSpace(name)) {
			return child
		}
	}
	return strings.TrimSpace(name)
}
