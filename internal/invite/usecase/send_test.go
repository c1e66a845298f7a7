package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"swim-schedule-manager/internal/invite"
	"swim-schedule-manager/internal/invite/usecase"
	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockProvider struct {
	requests []invite.InviteRequest
	failOn   map[string]error
}

func (m *mockProvider) CreateInvite(ctx context.Context, req invite.InviteRequest) error {
	m.requests = append(m.requests, req)
	if err, ok := m.failOn[req.Title]; ok {
		return err
	}
	return nil
}

func newUseCase(t *testing.T, p invite.Provider) invite.UseCase {
	t.Helper()
	dateMath, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return usecase.New(&mockLogger{}, p, dateMath, "America/Los_Angeles")
}

func TestSend(t *testing.T) {
	events := []model.PracticeEvent{
		{
			Date: "June 3, 2026", Child: "Nastya", Time: "5:00 PM - 6:30 PM",
			LocationCode: "MW", LocationName: "Mountain View Swim Center",
			LocationAddress: "1160 Terra Bella Ave, Mountain View, CA",
			Title:           "Nastya @MW 5:00 PM - 6:30 PM",
		},
		{
			Date: "June 4, 2026", Child: "Alisa", Time: "4:00 PM - 5:30 PM",
			LocationCode: "RC", LocationName: "Rinconada Pool",
			Title: "Alisa @RC 4:00 PM - 5:30 PM",
		},
	}

	t.Run("all events dispatch with resolved windows", func(t *testing.T) {
		p := &mockProvider{}
		uc := newUseCase(t, p)

		out, err := uc.Send(context.Background(), invite.SendInput{
			Events:    events,
			Attendees: []string{"coach@example.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(out.Results))
		}
		for i, res := range out.Results {
			if !res.Success || res.Error != "" {
				t.Errorf("result %d: expected success, got %+v", i, res)
			}
		}
		if out.Results[0].Event != "Nastya @MW 5:00 PM - 6:30 PM" {
			t.Errorf("unexpected result title: %q", out.Results[0].Event)
		}

		req := p.requests[0]
		if req.StartTime.Hour() != 17 || req.StartTime.Day() != 3 {
			t.Errorf("unexpected start: %v", req.StartTime)
		}
		if req.EndTime.Hour() != 18 || req.EndTime.Minute() != 30 {
			t.Errorf("unexpected end: %v", req.EndTime)
		}
		if req.Timezone != "America/Los_Angeles" {
			t.Errorf("unexpected timezone: %q", req.Timezone)
		}
		if req.Location != "Mountain View Swim Center, 1160 Terra Bella Ave, Mountain View, CA" {
			t.Errorf("unexpected location: %q", req.Location)
		}
		if len(req.Attendees) != 1 || req.Attendees[0] != "coach@example.com" {
			t.Errorf("unexpected attendees: %v", req.Attendees)
		}
	})

	t.Run("provider failure is recorded verbatim and does not stop the rest", func(t *testing.T) {
		p := &mockProvider{failOn: map[string]error{
			"Nastya @MW 5:00 PM - 6:30 PM": errors.New("mailbox not found"),
		}}
		uc := newUseCase(t, p)

		out, err := uc.Send(context.Background(), invite.SendInput{
			Events:    events,
			Attendees: []string{"coach@example.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Results[0].Success || out.Results[0].Error != "mailbox not found" {
			t.Errorf("expected verbatim failure, got %+v", out.Results[0])
		}
		if !out.Results[1].Success {
			t.Errorf("expected second event to still dispatch, got %+v", out.Results[1])
		}
	})

	t.Run("unparseable date yields a per-event failure", func(t *testing.T) {
		p := &mockProvider{}
		uc := newUseCase(t, p)

		bad := model.PracticeEvent{Date: "someday", Child: "Nastya", Time: "whenever", Title: "Nastya @?? whenever"}
		out, err := uc.Send(context.Background(), invite.SendInput{
			Events:    []model.PracticeEvent{bad},
			Attendees: []string{"coach@example.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res := out.Results[0]
		if res.Success {
			t.Fatalf("expected failure, got %+v", res)
		}
		if !strings.HasPrefix(res.Error, "Could not parse date/time:") {
			t.Errorf("unexpected error text: %q", res.Error)
		}
		if len(p.requests) != 0 {
			t.Errorf("expected no provider call for unparseable event")
		}
	})

	t.Run("no events is rejected", func(t *testing.T) {
		uc := newUseCase(t, &mockProvider{})
		in := invite.SendInput{Attendees: []string{"coach@example.com"}}
		if _, err := uc.Send(context.Background(), in); !errors.Is(err, invite.ErrNoEvents) {
			t.Errorf("expected ErrNoEvents, got %v", err)
		}
	})

	t.Run("no attendees is rejected before any provider call", func(t *testing.T) {
		p := &mockProvider{}
		uc := newUseCase(t, p)

		if _, err := uc.Send(context.Background(), invite.SendInput{Events: events}); !errors.Is(err, invite.ErrNoAttendees) {
			t.Errorf("expected ErrNoAttendees, got %v", err)
		}
		if len(p.requests) != 0 {
			t.Errorf("expected no provider calls, got %d", len(p.requests))
		}
	})

	t.Run("missing title is derived", func(t *testing.T) {
		p := &mockProvider{}
		uc := newUseCase(t, p)

		bare := model.PracticeEvent{Date: "June 3, 2026", Child: "Alisa", Time: "4:00 PM - 5:30 PM", LocationCode: "RC"}
		out, err := uc.Send(context.Background(), invite.SendInput{
			Events:    []model.PracticeEvent{bare},
			Attendees: []string{"coach@example.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Results[0].Event != "Alisa @RC 4:00 PM - 5:30 PM" {
			t.Errorf("unexpected derived title: %q", out.Results[0].Event)
		}
	})
}
