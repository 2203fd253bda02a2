// Package telemetry validates anonymized client-side telemetry reports.
// The endpoint is intake-only: a report either passes every field
// validator or is rejected with a machine-readable code. Nothing here is
// persisted or forwarded; payloads are never logged.
package telemetry

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// MaxEvents bounds the events array; larger payloads are rejected as
// oversized rather than merely invalid.
const MaxEvents = 300

var allowedEnvironments = map[string]bool{
	"dev":        true,
	"staging":    true,
	"production": true,
}

var allowedEndpoints = map[string]bool{
	"/quotes": true,
	"/fx":     true,
	"/search": true,
}

var allowedErrorTypes = map[string]bool{
	"none":         true,
	"network":      true,
	"timeout":      true,
	"decoding":     true,
	"rate_limited": true,
	"server":       true,
	"unknown":      true,
}

// Event is one client-observed request outcome.
type Event struct {
	Timestamp  string `json:"timestamp"`
	Endpoint   string `json:"endpoint"`
	HTTPStatus *int   `json:"httpStatus"`
	ErrorType  string `json:"errorType"`
	RequestID  string `json:"requestId"`
}

// Report is the POST /telemetry request body.
type Report struct {
	ReportID           string  `json:"reportId"`
	CreatedAt          string  `json:"createdAt"`
	BackendEnvironment string  `json:"backendEnvironment"`
	AppVersion         string  `json:"appVersion"`
	IOSVersion         string  `json:"iosVersion"`
	DeviceModel        string  `json:"deviceModel"`
	Events             []Event `json:"events"`
}

// ValidationError carries the rejection code and the HTTP status it maps
// to. Every code is stable; the mobile client switches on them.
type ValidationError struct {
	Code   string
	Status int
}

func (e *ValidationError) Error() string { return e.Code }

func badRequest(code string) *ValidationError {
	return &ValidationError{Code: code, Status: http.StatusBadRequest}
}

// Validate checks every field of the report and returns the first failure.
// Order matters only in that the size bound on events is checked before
// per-event validation, so an oversized report is always a 413.
func (r *Report) Validate() *ValidationError {
	if !validUUID(r.ReportID) {
		return badRequest("invalid_reportId")
	}
	if !validTimestamp(r.CreatedAt) {
		return badRequest("invalid_createdAt")
	}
	if !allowedEnvironments[r.BackendEnvironment] {
		return badRequest("invalid_backendEnvironment")
	}
	if !boundedString(r.AppVersion, 32) {
		return badRequest("invalid_appVersion")
	}
	if !boundedString(r.IOSVersion, 32) {
		return badRequest("invalid_iosVersion")
	}
	if !boundedString(r.DeviceModel, 64) {
		return badRequest("invalid_deviceModel")
	}
	if r.Events == nil {
		return badRequest("missing_events")
	}
	if len(r.Events) > MaxEvents {
		return &ValidationError{Code: "too_many_events", Status: http.StatusRequestEntityTooLarge}
	}
	for _, ev := range r.Events {
		if err := ev.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Event) validate() *ValidationError {
	if !validTimestamp(ev.Timestamp) {
		return badRequest("invalid_event_timestamp")
	}
	if !allowedEndpoints[ev.Endpoint] {
		return badRequest("invalid_event_endpoint")
	}
	if ev.HTTPStatus != nil && (*ev.HTTPStatus < 100 || *ev.HTTPStatus > 599) {
		return badRequest("invalid_event_httpStatus")
	}
	if !allowedErrorTypes[ev.ErrorType] {
		return badRequest("invalid_event_errorType")
	}
	if !validUUID(ev.RequestID) {
		return badRequest("invalid_event_requestId")
	}
	return nil
}

func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func validTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func boundedString(s string, max int) bool {
	return s != "" && len(s) <= max
}
