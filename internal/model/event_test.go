package model_test

import (
	"testing"

	"swim-schedule-manager/internal/model"
)

func TestDeriveTitle(t *testing.T) {
	t.Run("dry land suffix", func(t *testing.T) {
		e := model.PracticeEvent{
			Child:        "Nastya",
			LocationCode: "MW",
			Time:         "5:00 PM - 8:00 PM",
			DryLand:      true,
		}
		if got := model.DeriveTitle(e); got != "Nastya @MW 5:00 PM - 8:00 PM DL" {
			t.Errorf("unexpected title: %q", got)
		}
	})

	t.Run("no suffix without dry land", func(t *testing.T) {
		e := model.PracticeEvent{
			Child:        "Alisa",
			LocationCode: "RC",
			Time:         "4:00 PM - 5:30 PM",
		}
		if got := model.DeriveTitle(e); got != "Alisa @RC 4:00 PM - 5:30 PM" {
			t.Errorf("unexpected title: %q", got)
		}
	})
}

func TestApplyDerived(t *testing.T) {
	t.Run("known code resolves venue", func(t *testing.T) {
		e := model.PracticeEvent{Child: "Nastya", LocationCode: "MW", Time: "5:00 PM - 6:30 PM"}
		model.ApplyDerived(&e)

		if e.LocationName != "Mountain View Swim Center" {
			t.Errorf("unexpected location name: %q", e.LocationName)
		}
		if e.LocationAddress == "" {
			t.Errorf("expected address for known code")
		}
		if e.Title != "Nastya @MW 5:00 PM - 6:30 PM" {
			t.Errorf("unexpected title: %q", e.Title)
		}
	})

	t.Run("unknown code blanks venue and renders TBD", func(t *testing.T) {
		e := model.PracticeEvent{
			Child:           "Nastya",
			LocationCode:    "ZZ",
			Time:            "5:00 PM - 6:30 PM",
			LocationName:    "stale",
			LocationAddress: "stale",
		}
		model.ApplyDerived(&e)

		if e.LocationName != "" || e.LocationAddress != "" {
			t.Errorf("expected blank venue fields, got %q / %q", e.LocationName, e.LocationAddress)
		}
		if got := model.LocationDisplay(e); got != "TBD" {
			t.Errorf("expected TBD, got %q", got)
		}
	})
}

func TestDisplayDate(t *testing.T) {
	t.Run("parseable date gains weekday prefix", func(t *testing.T) {
		// 2026-06-03 is a Wednesday.
		if got := model.DisplayDate("June 3, 2026"); got != "Wednesday, June 3, 2026" {
			t.Errorf("unexpected label: %q", got)
		}
	})

	t.Run("weekday already present is kept as-is", func(t *testing.T) {
		raw := "Wednesday, June 3, 2026"
		if got := model.DisplayDate(raw); got != raw {
			t.Errorf("unexpected label: %q", got)
		}
	})

	t.Run("unparseable date passes through unchanged", func(t *testing.T) {
		if got := model.DisplayDate("week of finals"); got != "week of finals" {
			t.Errorf("unexpected label: %q", got)
		}
	})
}

func TestGroupByDate(t *testing.T) {
	events := []model.PracticeEvent{
		{Date: "6/1/2026", Child: "Nastya"},
		{Date: "6/2/2026", Child: "Nastya"},
		{Date: "6/1/2026", Child: "Alisa"},
		{Date: "6/3/2026", Child: "Alisa"},
	}

	groups := model.GroupByDate(events)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Date != "6/1/2026" || groups[1].Date != "6/2/2026" || groups[2].Date != "6/3/2026" {
		t.Errorf("first-seen order not preserved: %+v", groups)
	}
	if len(groups[0].Indices) != 2 || groups[0].Indices[0] != 0 || groups[0].Indices[1] != 2 {
		t.Errorf("unexpected indices for first group: %+v", groups[0].Indices)
	}
}
