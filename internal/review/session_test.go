package review_test

import (
	"errors"
	"testing"

	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/review"
)

func sampleEvents() []model.PracticeEvent {
	return []model.PracticeEvent{
		{Date: "June 3, 2026", Child: "Nastya", Time: "5:00 PM - 6:30 PM", LocationCode: "MW"},
		{Date: "June 3, 2026", Child: "Alisa", Time: "4:00 PM - 5:30 PM", LocationCode: "RC"},
		{Date: "June 4, 2026", Child: "Nastya", Time: "5:00 PM - 8:00 PM", LocationCode: "MW", DryLand: true},
	}
}

func reviewingSession(t *testing.T) *review.Session {
	t.Helper()
	s := review.NewSession()
	if err := s.SelectFile("schedule.pdf"); err != nil {
		t.Fatalf("SelectFile: %v", err)
	}
	if err := s.BeginExtraction(); err != nil {
		t.Fatalf("BeginExtraction: %v", err)
	}
	if err := s.FinishExtraction(sampleEvents(), nil); err != nil {
		t.Fatalf("FinishExtraction: %v", err)
	}
	return s
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("extraction requires a selected file", func(t *testing.T) {
		s := review.NewSession()
		if err := s.BeginExtraction(); !errors.Is(err, review.ErrNoFile) {
			t.Errorf("expected ErrNoFile, got %v", err)
		}
	})

	t.Run("only one outstanding request", func(t *testing.T) {
		s := review.NewSession()
		s.SelectFile("schedule.pdf")
		s.BeginExtraction()

		if err := s.BeginExtraction(); !errors.Is(err, review.ErrBusy) {
			t.Errorf("expected ErrBusy on second extraction, got %v", err)
		}
		if err := s.SelectFile("other.pdf"); !errors.Is(err, review.ErrBusy) {
			t.Errorf("expected ErrBusy on select while extracting, got %v", err)
		}
		if err := s.AddAttendee("a@b.com"); !errors.Is(err, review.ErrBusy) {
			t.Errorf("expected ErrBusy on attendee add while extracting, got %v", err)
		}
	})

	t.Run("failed extraction allows resubmission", func(t *testing.T) {
		s := review.NewSession()
		s.SelectFile("schedule.pdf")
		s.BeginExtraction()
		s.FailExtraction()

		if got := s.State(); got != review.StateFileSelected {
			t.Fatalf("expected file-selected after failure, got %s", got)
		}
		if err := s.BeginExtraction(); err != nil {
			t.Errorf("expected resubmission to work: %v", err)
		}
	})

	t.Run("successful extraction resets review state", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("parent@example.com")
		s.SetEventSelected(0, false)
		s.ToggleCollapse("June 3, 2026")

		s.BeginSend()
		s.FinishSend([]model.SendResult{{Event: "x", Success: true}})

		// Re-extract over the results: everything review-scoped resets.
		s.BeginExtraction()
		if err := s.FinishExtraction(sampleEvents()[:1], nil); err != nil {
			t.Fatalf("FinishExtraction: %v", err)
		}

		v := s.Render()
		if v.State != review.StateReviewing {
			t.Errorf("expected reviewing, got %s", v.State)
		}
		if len(v.Attendees) != 0 {
			t.Errorf("expected attendees cleared, got %v", v.Attendees)
		}
		if len(v.Results) != 0 {
			t.Errorf("expected results cleared, got %v", v.Results)
		}
		for _, g := range v.Groups {
			if g.Collapsed {
				t.Errorf("expected group %s expanded", g.Date)
			}
			if !g.AllSelected {
				t.Errorf("expected group %s fully selected", g.Date)
			}
		}
	})

	t.Run("zero events renders empty message not stale data", func(t *testing.T) {
		s := reviewingSession(t)
		s.BeginExtraction()
		if err := s.FinishExtraction(nil, nil); err != nil {
			t.Fatalf("FinishExtraction: %v", err)
		}

		v := s.Render()
		if len(v.Groups) != 0 {
			t.Fatalf("expected no groups, got %d", len(v.Groups))
		}
		if v.EmptyMessage != model.EmptyScheduleMessage {
			t.Errorf("unexpected empty message: %q", v.EmptyMessage)
		}
	})

	t.Run("failed send returns to reviewing", func(t *testing.T) {
		s := reviewingSession(t)
		s.BeginSend()
		s.FailSend()
		if got := s.State(); got != review.StateReviewing {
			t.Errorf("expected reviewing after send failure, got %s", got)
		}
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("a@b.com")
		if err := s.Reset(); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		v := s.Render()
		if v.State != review.StateIdle || v.FileName != "" || len(v.Attendees) != 0 {
			t.Errorf("expected pristine idle view, got %+v", v)
		}
	})
}

func TestSelection(t *testing.T) {
	t.Run("group checkbox is AND of its events", func(t *testing.T) {
		s := reviewingSession(t)

		s.SetEventSelected(0, false)
		v := s.Render()
		if v.Groups[0].AllSelected {
			t.Errorf("expected June 3 group unchecked after one event deselected")
		}
		if v.Groups[1].AllSelected != true {
			t.Errorf("expected June 4 group untouched")
		}

		s.SetEventSelected(0, true)
		v = s.Render()
		if !v.Groups[0].AllSelected {
			t.Errorf("expected June 3 group checked once both events selected")
		}
	})

	t.Run("date toggle sets the whole group", func(t *testing.T) {
		s := reviewingSession(t)
		s.SetDateSelected("June 3, 2026", false)

		v := s.Render()
		for _, ev := range v.Groups[0].Events {
			if ev.Selected {
				t.Errorf("expected event %d deselected", ev.Index)
			}
		}
		if !v.Groups[1].Events[0].Selected {
			t.Errorf("expected other group unaffected")
		}
	})

	t.Run("select all then deselect one", func(t *testing.T) {
		s := reviewingSession(t)
		s.SetAllSelected(false)
		s.SetAllSelected(true)
		s.SetEventSelected(2, false)

		got := s.SelectedEvents()
		if len(got) != 2 {
			t.Fatalf("expected 2 selected events, got %d", len(got))
		}
		if got[0].Child != "Nastya" || got[1].Child != "Alisa" {
			t.Errorf("expected schedule order preserved, got %+v", got)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		s := reviewingSession(t)
		if err := s.SetEventSelected(99, true); !errors.Is(err, review.ErrEventIndex) {
			t.Errorf("expected ErrEventIndex, got %v", err)
		}
	})
}

func TestEdits(t *testing.T) {
	t.Run("time edit re-derives title only for that event", func(t *testing.T) {
		s := reviewingSession(t)
		s.SetEventSelected(1, false)

		if err := s.EditTime(0, "6:00 PM - 7:30 PM"); err != nil {
			t.Fatalf("EditTime: %v", err)
		}

		v := s.Render()
		edited := v.Groups[0].Events[0]
		if edited.Time != "6:00 PM - 7:30 PM" {
			t.Errorf("unexpected time: %q", edited.Time)
		}
		if edited.Title != "Nastya @MW 6:00 PM - 7:30 PM" {
			t.Errorf("unexpected title: %q", edited.Title)
		}

		neighbor := v.Groups[0].Events[1]
		if neighbor.Time != "4:00 PM - 5:30 PM" || neighbor.Selected {
			t.Errorf("expected neighbor untouched, got %+v", neighbor)
		}
	})

	t.Run("dry-land suffix survives edits", func(t *testing.T) {
		s := reviewingSession(t)
		s.EditTime(2, "5:30 PM - 8:00 PM")

		v := s.Render()
		if got := v.Groups[1].Events[0].Title; got != "Nastya @MW 5:30 PM - 8:00 PM DL" {
			t.Errorf("unexpected title: %q", got)
		}
	})

	t.Run("location edit re-resolves venue", func(t *testing.T) {
		s := reviewingSession(t)
		s.EditLocation(0, "GN")

		v := s.Render()
		ev := v.Groups[0].Events[0]
		if ev.LocationName != "Gunn High School Pool" {
			t.Errorf("unexpected venue name: %q", ev.LocationName)
		}
		if ev.Title != "Nastya @GN 5:00 PM - 6:30 PM" {
			t.Errorf("unexpected title: %q", ev.Title)
		}
	})

	t.Run("unknown location renders TBD", func(t *testing.T) {
		s := reviewingSession(t)
		s.EditLocation(0, "ZZ")

		v := s.Render()
		ev := v.Groups[0].Events[0]
		if ev.LocationDisplay != "TBD" {
			t.Errorf("expected TBD, got %q", ev.LocationDisplay)
		}
		if ev.LocationAddress != "" {
			t.Errorf("expected blank address, got %q", ev.LocationAddress)
		}
	})

	t.Run("empty time is rejected", func(t *testing.T) {
		s := reviewingSession(t)
		if err := s.EditTime(0, "   "); !errors.Is(err, review.ErrEmptyTime) {
			t.Errorf("expected ErrEmptyTime, got %v", err)
		}
	})
}

func TestAttendees(t *testing.T) {
	t.Run("normalizes and preserves order", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("  Coach@Example.COM ")
		s.AddAttendee("parent@example.com")

		got := s.Attendees()
		if len(got) != 2 || got[0] != "coach@example.com" || got[1] != "parent@example.com" {
			t.Errorf("unexpected attendee list: %v", got)
		}
	})

	t.Run("rejects invalid addresses without touching the list", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("a@b.com")

		for _, bad := range []string{"", "no-at-sign", "two@@signs.com", "a@nodot", "spaces in@side.com"} {
			if err := s.AddAttendee(bad); !errors.Is(err, review.ErrInvalidAttendee) {
				t.Errorf("%q: expected ErrInvalidAttendee, got %v", bad, err)
			}
		}
		if got := s.Attendees(); len(got) != 1 {
			t.Errorf("expected list unchanged, got %v", got)
		}
	})

	t.Run("rejects case-insensitive duplicates", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("coach@example.com")
		if err := s.AddAttendee("COACH@example.com"); !errors.Is(err, review.ErrDuplicateAttendee) {
			t.Errorf("expected ErrDuplicateAttendee, got %v", err)
		}
	})

	t.Run("remove keeps remaining order", func(t *testing.T) {
		s := reviewingSession(t)
		s.AddAttendee("a@b.com")
		s.AddAttendee("c@d.com")
		s.AddAttendee("e@f.com")

		if err := s.RemoveAttendee(1); err != nil {
			t.Fatalf("RemoveAttendee: %v", err)
		}
		got := s.Attendees()
		if len(got) != 2 || got[0] != "a@b.com" || got[1] != "e@f.com" {
			t.Errorf("unexpected list after removal: %v", got)
		}

		if err := s.RemoveAttendee(5); !errors.Is(err, review.ErrAttendeeIndex) {
			t.Errorf("expected ErrAttendeeIndex, got %v", err)
		}
	})
}

func TestBanner(t *testing.T) {
	t.Run("agreement when no misalignments", func(t *testing.T) {
		s := reviewingSession(t)
		v := s.Render()
		if v.Banner == nil || v.Banner.Kind != review.BannerAgreement {
			t.Fatalf("expected agreement banner, got %+v", v.Banner)
		}
	})

	t.Run("misaligned with count", func(t *testing.T) {
		s := review.NewSession()
		s.SelectFile("schedule.pdf")
		s.BeginExtraction()
		child := "Nastya"
		s.FinishExtraction(sampleEvents(), []model.Misalignment{
			{Date: "June 3, 2026", Child: &child, Type: model.MisalignmentTimeMismatch, PrimaryValue: "5:00 PM", SecondaryValue: "5:30 PM"},
		})

		v := s.Render()
		if v.Banner == nil || v.Banner.Kind != review.BannerMisaligned {
			t.Fatalf("expected misaligned banner, got %+v", v.Banner)
		}
		if v.Banner.Message != "Cross-check found 1 discrepancy. Review the highlighted events before sending." {
			t.Errorf("unexpected message: %q", v.Banner.Message)
		}
	})

	t.Run("warning when verification failed", func(t *testing.T) {
		s := review.NewSession()
		s.SelectFile("schedule.pdf")
		s.BeginExtraction()
		s.FinishExtraction(sampleEvents(), []model.Misalignment{
			{Type: model.MisalignmentVerificationError, PrimaryValue: "verification call failed: timeout"},
		})

		v := s.Render()
		if v.Banner == nil || v.Banner.Kind != review.BannerWarning {
			t.Fatalf("expected warning banner, got %+v", v.Banner)
		}
		if v.Banner.Message != "verification call failed: timeout" {
			t.Errorf("unexpected message: %q", v.Banner.Message)
		}
	})
}

func TestGrouping(t *testing.T) {
	s := reviewingSession(t)
	v := s.Render()

	if len(v.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(v.Groups))
	}
	if v.Groups[0].Date != "June 3, 2026" || v.Groups[1].Date != "June 4, 2026" {
		t.Errorf("unexpected group order: %s, %s", v.Groups[0].Date, v.Groups[1].Date)
	}
	if v.Groups[0].Label != "Wednesday, June 3, 2026" {
		t.Errorf("unexpected label: %q", v.Groups[0].Label)
	}
	if len(v.Groups[0].Events) != 2 || len(v.Groups[1].Events) != 1 {
		t.Errorf("unexpected group sizes")
	}

	s.ToggleCollapse("June 3, 2026")
	v = s.Render()
	if !v.Groups[0].Collapsed || v.Groups[1].Collapsed {
		t.Errorf("expected only June 3 collapsed")
	}
}
