package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"swim-schedule-manager/internal/model"
	"swim-schedule-manager/internal/review"
	"swim-schedule-manager/internal/schedule"
	scheduleHTTP "swim-schedule-manager/internal/schedule/delivery/http"
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

type mockUseCase struct {
	output schedule.ParseOutput
	err    error
}

func (m *mockUseCase) Parse(ctx context.Context, input schedule.ParseInput) (schedule.ParseOutput, error) {
	return m.output, m.err
}

func newRouter(uc schedule.UseCase, session *review.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := scheduleHTTP.New(&mockLogger{}, uc, session, 60)
	scheduleHTTP.RegisterRoutes(r.Group("/api"), h)
	return r
}

func uploadRequest(t *testing.T, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/parse-pdf", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParsePDF(t *testing.T) {
	t.Run("success returns events and misalignments", func(t *testing.T) {
		child := "Nastya"
		uc := &mockUseCase{output: schedule.ParseOutput{
			Events: []model.PracticeEvent{
				{Date: "June 3, 2026", Child: "Nastya", Time: "5:00 PM - 6:30 PM", LocationCode: "MW", Title: "Nastya @MW 5:00 PM - 6:30 PM"},
			},
			Misalignments: []model.Misalignment{
				{Date: "June 3, 2026", Child: &child, Type: model.MisalignmentTimeMismatch, PrimaryValue: "5:00 PM", SecondaryValue: "5:30 PM"},
			},
		}}
		session := review.NewSession()
		r := newRouter(uc, session)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "schedule.pdf", []byte("%PDF-1.4")))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Events        []model.PracticeEvent `json:"events"`
			Misalignments []model.Misalignment  `json:"misalignments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(body.Events) != 1 || len(body.Misalignments) != 1 {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
		if session.State() != review.StateReviewing {
			t.Errorf("expected session reviewing, got %s", session.State())
		}
	})

	t.Run("misalignments key omitted when empty", func(t *testing.T) {
		uc := &mockUseCase{output: schedule.ParseOutput{Events: []model.PracticeEvent{}}}
		r := newRouter(uc, review.NewSession())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "schedule.pdf", []byte("%PDF-1.4")))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var raw map[string]json.RawMessage
		json.Unmarshal(w.Body.Bytes(), &raw)
		if _, ok := raw["misalignments"]; ok {
			t.Errorf("expected misalignments omitted, got %s", w.Body.String())
		}
		if _, ok := raw["events"]; !ok {
			t.Errorf("expected events key present, got %s", w.Body.String())
		}
	})

	t.Run("non-pdf extension is rejected", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, review.NewSession())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "schedule.docx", []byte("not a pdf")))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["detail"] != "Please upload a PDF file" {
			t.Errorf("unexpected detail: %q", body["detail"])
		}
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		r := newRouter(&mockUseCase{}, review.NewSession())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/parse-pdf", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("extraction failure surfaces detail and frees the session", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("extraction request failed: model overloaded")}
		session := review.NewSession()
		r := newRouter(uc, session)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "schedule.pdf", []byte("%PDF-1.4")))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["detail"] != "extraction request failed: model overloaded" {
			t.Errorf("unexpected detail: %q", body["detail"])
		}
		if session.State() != review.StateFileSelected {
			t.Errorf("expected session back to file-selected, got %s", session.State())
		}
	})

	t.Run("busy session returns conflict", func(t *testing.T) {
		session := review.NewSession()
		session.SelectFile("other.pdf")
		session.BeginExtraction()
		r := newRouter(&mockUseCase{}, session)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "schedule.pdf", []byte("%PDF-1.4")))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
