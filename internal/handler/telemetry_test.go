package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tayara1972/apexview-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func postTelemetry(r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/telemetry", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func telemetryReport(events int) *telemetry.Report {
	evs := make([]telemetry.Event, events)
	status := 200
	for i := range evs {
		evs[i] = telemetry.Event{
			Timestamp:  "2026-08-30T10:14:58Z",
			Endpoint:   "/quotes",
			HTTPStatus: &status,
			ErrorType:  "none",
			RequestID:  uuid.NewString(),
		}
	}
	return &telemetry.Report{
		ReportID:           uuid.NewString(),
		CreatedAt:          "2026-08-30T10:15:00Z",
		BackendEnvironment: "production",
		AppVersion:         "2.4.1",
		IOSVersion:         "17.5",
		DeviceModel:        "iPhone15,2",
		Events:             evs,
	}
}

func TestTelemetryAcceptsValidReport(t *testing.T) {
	r := newTestRouter(defaultDeps())

	report := telemetryReport(2)
	body, _ := json.Marshal(report)
	w := postTelemetry(r, body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		ReportID string `json:"reportId"`
		Received int    `json:"received"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.OK || resp.ReportID != report.ReportID || resp.Received != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTelemetryRejectsMalformedJSON(t *testing.T) {
	r := newTestRouter(defaultDeps())

	w := postTelemetry(r, []byte(`{"reportId":`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_json") {
		t.Fatalf("expected invalid_json code, got %s", w.Body.String())
	}
}

func TestTelemetryOversizedEvents(t *testing.T) {
	r := newTestRouter(defaultDeps())

	body, _ := json.Marshal(telemetryReport(telemetry.MaxEvents + 1))
	w := postTelemetry(r, body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for 301 events, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "too_many_events") {
		t.Fatalf("expected too_many_events code, got %s", w.Body.String())
	}
}

func TestTelemetryBadReportID(t *testing.T) {
	r := newTestRouter(defaultDeps())

	report := telemetryReport(1)
	report.ReportID = "nope"
	body, _ := json.Marshal(report)

	w := postTelemetry(r, body)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "invalid_reportId") {
		t.Fatalf("expected 400 invalid_reportId, got %d %s", w.Code, w.Body.String())
	}
}

func TestTelemetryBadEventEndpoint(t *testing.T) {
	r := newTestRouter(defaultDeps())

	report := telemetryReport(1)
	report.Events[0].Endpoint = "/admin"
	body, _ := json.Marshal(report)

	w := postTelemetry(r, body)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "invalid_event_endpoint") {
		t.Fatalf("expected 400 invalid_event_endpoint, got %d %s", w.Code, w.Body.String())
	}
}
