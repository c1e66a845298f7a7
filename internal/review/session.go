package review

import (
	"regexp"
	"strings"
	"sync"

	"swim-schedule-manager/internal/model"
)

// attendeeRe is the accepted address shape: local-part@domain-with-dot.
var attendeeRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Session holds the authoritative in-memory review state: selected file,
// parsed events, per-event selection, collapse flags, attendees, and the
// last dispatch results. All mutation goes through named operations that
// keep derived fields consistent. Safe for concurrent use.
type Session struct {
	mu            sync.Mutex
	state         State
	fileName      string
	events        []model.PracticeEvent
	selected      []bool
	collapsed     map[string]bool
	attendees     []string
	misalignments []model.Misalignment
	results       []model.SendResult
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{
		state:     StateIdle,
		collapsed: make(map[string]bool),
	}
}

// State returns the current workflow state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) busy() bool {
	return s.state == StateExtracting || s.state == StateSending
}

// SelectFile records the chosen file name.
func (s *Session) SelectFile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	s.fileName = name
	s.state = StateFileSelected
	return nil
}

// BeginExtraction marks the single outstanding extraction as started.
func (s *Session) BeginExtraction() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if s.fileName == "" {
		return ErrNoFile
	}
	s.state = StateExtracting
	return nil
}

// FinishExtraction installs a fresh extraction result. Prior events,
// selection, attendees, collapse flags, and results are all discarded:
// every successful extraction starts a new review.
func (s *Session) FinishExtraction(events []model.PracticeEvent, misalignments []model.Misalignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateExtracting {
		return ErrNotExtracting
	}
	s.installEvents(events, misalignments)
	return nil
}

// FailExtraction returns the session to an interactive, resubmittable state.
func (s *Session) FailExtraction() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateExtracting {
		s.state = StateFileSelected
	}
}

// InjectEvents is the synthetic test-data path: it installs events directly,
// bypassing the extraction gateway.
func (s *Session) InjectEvents(events []model.PracticeEvent, misalignments []model.Misalignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	s.fileName = "sample-data"
	s.installEvents(events, misalignments)
	return nil
}

func (s *Session) installEvents(events []model.PracticeEvent, misalignments []model.Misalignment) {
	s.events = make([]model.PracticeEvent, len(events))
	copy(s.events, events)
	for i := range s.events {
		model.ApplyDerived(&s.events[i])
	}

	// Selection always re-initializes to all-true on a fresh render.
	s.selected = make([]bool, len(s.events))
	for i := range s.selected {
		s.selected[i] = true
	}

	s.collapsed = make(map[string]bool)
	s.attendees = nil
	s.results = nil
	s.misalignments = misalignments
	s.state = StateReviewing
}

// SetEventSelected sets one event's include-in-send flag.
func (s *Session) SetEventSelected(index int, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if index < 0 || index >= len(s.events) {
		return ErrEventIndex
	}
	s.selected[index] = on
	return nil
}

// SetDateSelected sets every event of one date group to the given flag.
func (s *Session) SetDateSelected(date string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	for i := range s.events {
		if s.events[i].Date == date {
			s.selected[i] = on
		}
	}
	return nil
}

// SetAllSelected sets every event's flag.
func (s *Session) SetAllSelected(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	for i := range s.selected {
		s.selected[i] = on
	}
	return nil
}

// EditTime rewrites one event's time range in place and re-derives its
// title. Position, date grouping, and selection are untouched.
func (s *Session) EditTime(index int, timeRange string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if index < 0 || index >= len(s.events) {
		return ErrEventIndex
	}
	timeRange = strings.TrimSpace(timeRange)
	if timeRange == "" {
		return ErrEmptyTime
	}
	s.events[index].Time = timeRange
	model.ApplyDerived(&s.events[index])
	return nil
}

// EditLocation rewrites one event's location code in place and re-derives
// its title, venue name, and address.
func (s *Session) EditLocation(index int, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if index < 0 || index >= len(s.events) {
		return ErrEventIndex
	}
	s.events[index].LocationCode = strings.TrimSpace(code)
	model.ApplyDerived(&s.events[index])
	return nil
}

// AddAttendee validates and appends an address. The address is lower-cased;
// duplicates are compared case-insensitively. On rejection the list is left
// unmodified and the returned error names the reason.
func (s *Session) AddAttendee(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}

	normalized := strings.ToLower(strings.TrimSpace(address))
	if !attendeeRe.MatchString(normalized) {
		return ErrInvalidAttendee
	}
	for _, existing := range s.attendees {
		if existing == normalized {
			return ErrDuplicateAttendee
		}
	}
	s.attendees = append(s.attendees, normalized)
	return nil
}

// RemoveAttendee removes by stable index, preserving the order of the rest.
func (s *Session) RemoveAttendee(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if index < 0 || index >= len(s.attendees) {
		return ErrAttendeeIndex
	}
	s.attendees = append(s.attendees[:index], s.attendees[index+1:]...)
	return nil
}

// Attendees returns a copy of the attendee list.
func (s *Session) Attendees() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.attendees))
	copy(out, s.attendees)
	return out
}

// ToggleCollapse flips one date group's collapsed flag. Collapse state is
// purely presentational.
func (s *Session) ToggleCollapse(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	s.collapsed[date] = !s.collapsed[date]
	return nil
}

// BeginSend marks the single outstanding dispatch as started.
func (s *Session) BeginSend() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	if s.state != StateReviewing && s.state != StateShowingResults {
		return ErrNothingToSend
	}
	s.state = StateSending
	return nil
}

// FinishSend installs dispatch results and moves to showing-results.
func (s *Session) FinishSend(results []model.SendResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSending {
		return ErrNotSending
	}
	s.results = results
	s.state = StateShowingResults
	return nil
}

// FailSend returns the session to the reviewing state after a failed
// dispatch call.
func (s *Session) FailSend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSending {
		s.state = StateReviewing
	}
}

// Reset discards everything and returns to idle.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy() {
		return ErrBusy
	}
	s.fileName = ""
	s.events = nil
	s.selected = nil
	s.collapsed = make(map[string]bool)
	s.attendees = nil
	s.misalignments = nil
	s.results = nil
	s.state = StateIdle
	return nil
}
