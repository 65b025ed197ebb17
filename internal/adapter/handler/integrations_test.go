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
)

type fakeSettings struct {
	url string
}

func (f *fakeSettings) GetWebhookURL(_ context.Context) (string, error) { return f.url, nil }
func (f *fakeSettings) SetWebhookURL(_ context.Context, url string) error {
	f.url = url
	return nil
}

func TestGetSheetsWebhookUnconfigured(t *testing.T) {
	e := newTestEcho()
	h := NewIntegrationsHandler(&fakeSettings{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := h.GetSheetsWebhook(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Data struct {
			WebhookURL string `json:"webhook_url"`
			Configured bool   `json:"configured"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.Configured || body.Data.WebhookURL != "" {
		t.Errorf("unexpected body: %+v", body.Data)
	}
}

func TestSetSheetsWebhook(t *testing.T) {
	e := newTestEcho()
	settings := &fakeSettings{}
	h := NewIntegrationsHandler(settings, zap.NewNop())

	url := "https://script.google.com/macros/s/abc/exec"
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"url":"`+url+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SetSheetsWebhook(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if settings.url != url {
		t.Errorf("stored url = %q, want %q", settings.url, url)
	}
}

func TestSetSheetsWebhookRejectsInvalidURL(t *testing.T) {
	e := newTestEcho()
	h := NewIntegrationsHandler(&fakeSettings{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"url":"bukan-url"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.SetSheetsWebhook(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
