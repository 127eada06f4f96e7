package shared

import (
	"net/http"
	"testing"
)

func TestNewAPIError(t *testing.T) {
	err := NewAPIError("test_code", "test message")
	if err.Code != "test_code" {
		t.Errorf("expected code 'test_code', got '%s'", err.Code)
	}
	if err.Message != "test message" {
		t.Errorf("expected message 'test message', got '%s'", err.Message)
	}
	if err.Details != nil {
		t.Errorf("expected nil details, got %v", err.Details)
	}
}

func TestAPIError_WithDetails(t *testing.T) {
	err := NewAPIError("code", "message")
	details := map[string]string{"field": "value"}
	err = err.WithDetails(details)

	if err.Details == nil {
		t.Fatal("expected details to be set")
	}
	d, ok := err.Details.(map[string]string)
	if !ok {
		t.Fatal("expected details to be map[string]string")
	}
	if d["field"] != "value" {
		t.Errorf("expected field 'value', got '%s'", d["field"])
	}
}

func assertHTTPError(t *testing.T, status int, code string, fn func(code, message string) error) {
	t.Helper()
	err := fn(code, "boom")
	httpErr := NewAPIError(code, "boom").ToHTTP(status)
	if httpErr.Code != status {
		t.Errorf("expected status %d, got %d", status, httpErr.Code)
	}
	apiErr, ok := httpErr.Message.(*APIError)
	if !ok {
		t.Fatal("expected message to be *APIError")
	}
	if apiErr.Code != code {
		t.Errorf("expected code '%s', got '%s'", code, apiErr.Code)
	}
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

func TestHTTPErrorConstructors(t *testing.T) {
	assertHTTPError(t, http.StatusBadRequest, "bad_request", func(c, m string) error { return BadRequest(c, m) })
	assertHTTPError(t, http.StatusNotFound, "missing", func(c, m string) error { return NotFound(c, m) })
	assertHTTPError(t, http.StatusConflict, "duplicate", func(c, m string) error { return Conflict(c, m) })
	assertHTTPError(t, http.StatusTooManyRequests, "rate_limited", func(c, m string) error { return TooManyRequests(c, m) })
	assertHTTPError(t, http.StatusServiceUnavailable, "db_down", func(c, m string) error { return ServiceUnavailable(c, m) })
	assertHTTPError(t, http.StatusInternalServerError, "oops", func(c, m string) error { return InternalError(c, m) })
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidState, ErrUnavailable, ErrBackendFailure}
	seen := make(map[string]bool)
	for _, err := range sentinels {
		if err.Error() == "" {
			t.Error("sentinel error should have a message")
		}
		if seen[err.Error()] {
			t.Errorf("duplicate sentinel message: %s", err.Error())
		}
		seen[err.Error()] = true
	}
}
