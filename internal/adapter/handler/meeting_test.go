package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/notulen-team/e-notulen/errors"
	"github.com/notulen-team/e-notulen/internal/domain/entities"
	"github.com/notulen-team/e-notulen/internal/usecase/minutes"
	pkgvalidator "github.com/notulen-team/e-notulen/pkg/validator"
)

// fakeMinutes serves a fixed collection; mutations apply the same pure
// operations the real service does, without persistence.
type fakeMinutes struct {
	meetings []entities.Meeting
}

func (f *fakeMinutes) find(id string) (entities.Meeting, error) {
	for _, m := range f.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return entities.Meeting{}, apperrors.ErrMeetingNotFound(id)
}

func (f *fakeMinutes) ListMeetings(_ context.Context, status entities.MeetingStatus) ([]entities.Meeting, error) {
	if status == "" {
		return f.meetings, nil
	}
	out := []entities.Meeting{}
	for _, m := range f.meetings {
		if m.Status == status {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMinutes) GetMeeting(_ context.Context, id string) (entities.Meeting, error) {
	return f.find(id)
}

func (f *fakeMinutes) CreateMeeting(_ context.Context, fields minutes.ScalarFields) (entities.Meeting, error) {
	m, err := minutes.SetScalars(entities.NewMeeting(), fields)
	if err != nil {
		return entities.Meeting{}, err
	}
	m.ID = "created"
	return m, nil
}

func (f *fakeMinutes) SaveMeeting(_ context.Context, m entities.Meeting) (entities.Meeting, error) {
	m.Normalize()
	if err := m.Validate(); err != nil {
		return entities.Meeting{}, apperrors.ErrInvalidInput(err.Error())
	}
	return m, nil
}

func (f *fakeMinutes) AddAttendee(_ context.Context, meetingID, name, position string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.AddAttendee(m, name, position)
}

func (f *fakeMinutes) RemoveAttendee(_ context.Context, meetingID, attendeeID string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.RemoveAttendee(m, attendeeID), nil
}

func (f *fakeMinutes) AddPoint(_ context.Context, meetingID string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.AddPoint(m), nil
}

func (f *fakeMinutes) UpdatePoint(_ context.Context, meetingID, pointID string, upd minutes.PointUpdate) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.UpdatePoint(m, pointID, upd)
}

func (f *fakeMinutes) RemovePoint(_ context.Context, meetingID, pointID string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.RemovePoint(m, pointID), nil
}

func (f *fakeMinutes) AddActionItem(_ context.Context, meetingID string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.AddActionItem(m), nil
}

func (f *fakeMinutes) UpdateActionItem(_ context.Context, meetingID, itemID string, upd minutes.ActionItemUpdate) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.UpdateActionItem(m, itemID, upd)
}

func (f *fakeMinutes) RemoveActionItem(_ context.Context, meetingID, itemID string) (entities.Meeting, error) {
	m, err := f.find(meetingID)
	if err != nil {
		return entities.Meeting{}, err
	}
	return minutes.RemoveActionItem(m, itemID), nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func storedMeeting() entities.Meeting {
	m := entities.NewMeeting()
	m.ID = "m-1"
	m.Title = "Rapat Koordinasi"
	m.Status = entities.MeetingStatusDraft
	return m
}

func TestGetMeetingHandler(t *testing.T) {
	e := newTestEcho()
	h := NewMeetingHandler(&fakeMinutes{meetings: []entities.Meeting{storedMeeting()}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "success" || body.Data.ID != "m-1" || body.Data.Title != "Rapat Koordinasi" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetMeetingHandlerNotFound(t *testing.T) {
	e := newTestEcho()
	h := NewMeetingHandler(&fakeMinutes{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateMeetingHandler(t *testing.T) {
	e := newTestEcho()
	h := NewMeetingHandler(&fakeMinutes{}, zap.NewNop())

	payload := `{"title":"Rapat Baru","date":"2024-06-01","location":"Aula"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateMeeting(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Title  string `json:"title"`
			Status string `json:"status"`
			Points []struct {
				Category string `json:"category"`
			} `json:"points"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.Title != "Rapat Baru" || body.Data.Status != "Draft" {
		t.Errorf("unexpected meeting: %+v", body.Data)
	}
	if len(body.Data.Points) != 1 || body.Data.Points[0].Category != "Pembahasan" {
		t.Errorf("expected one seeded Pembahasan point: %+v", body.Data.Points)
	}
}

func TestCreateMeetingHandlerRejectsBadDate(t *testing.T) {
	e := newTestEcho()
	h := NewMeetingHandler(&fakeMinutes{}, zap.NewNop())

	payload := `{"title":"Rapat","date":"20-06-2024"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateMeeting(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAddAttendeeHandlerRejectsMissingName(t *testing.T) {
	e := newTestEcho()
	h := NewMeetingHandler(&fakeMinutes{meetings: []entities.Meeting{storedMeeting()}}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"position":"Staf"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m-1")

	if err := h.AddAttendee(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateActionItemHandler(t *testing.T) {
	e := newTestEcho()
	m := storedMeeting()
	m = minutes.AddActionItem(m)
	h := NewMeetingHandler(&fakeMinutes{meetings: []entities.Meeting{m}}, zap.NewNop())

	payload := `{"task":"Menyusun laporan","status":"Completed"}`
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "itemID")
	c.SetParamValues("m-1", m.ActionItems[0].ID)

	if err := h.UpdateActionItem(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			ActionItems []struct {
				Task   string `json:"task"`
				Status string `json:"status"`
			} `json:"actionItems"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data.ActionItems) != 1 {
		t.Fatalf("expected 1 action item, got %d", len(body.Data.ActionItems))
	}
	item := body.Data.ActionItems[0]
	if item.Task != "Menyusun laporan" || item.Status != "Completed" {
		t.Errorf("unexpected item: %+v", item)
	}
}
