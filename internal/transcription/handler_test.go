package transcription

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/voiceowl/transcription-backend/internal/dto"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := setupTestStore(t)
	downloader := NewDownloader(nil, true)
	svc := NewService(store, downloader, testRetry(), logger)
	azure := NewAzureService(AzureConfig{}, downloader, testRetry(), logger)
	return NewHandler(svc, azure, logger)
}

func doRequest(h *Handler, method, target, body string, fn echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, fn(c)
}

func TestHandler_CreateTranscription(t *testing.T) {
	h := newTestHandler(t)

	rec, err := doRequest(h, http.MethodPost, "/transcription",
		`{"audioUrl":"https://example.com/audio.mp3"}`, h.CreateTranscription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.CreateTranscriptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected transcription id in response")
	}
}

func TestHandler_CreateTranscription_MissingAudioURL(t *testing.T) {
	h := newTestHandler(t)

	_, err := doRequest(h, http.MethodPost, "/transcription", `{}`, h.CreateTranscription)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_CreateTranscription_InvalidURL(t *testing.T) {
	h := newTestHandler(t)

	_, err := doRequest(h, http.MethodPost, "/transcription",
		`{"audioUrl":"not a url"}`, h.CreateTranscription)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_ListTranscriptions(t *testing.T) {
	h := newTestHandler(t)

	for _, url := range []string{"https://example.com/a.mp3", "https://example.com/b.mp3"} {
		rec, err := doRequest(h, http.MethodPost, "/transcription",
			`{"audioUrl":"`+url+`"}`, h.CreateTranscription)
		if err != nil || rec.Code != http.StatusCreated {
			t.Fatalf("setup failed: err=%v code=%d", err, rec.Code)
		}
	}

	rec, err := doRequest(h, http.MethodGet, "/transcriptions?days=30", "", h.ListTranscriptions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTranscriptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Count != 2 || len(resp.Transcriptions) != 2 {
		t.Errorf("expected 2 transcriptions, got count=%d len=%d", resp.Count, len(resp.Transcriptions))
	}
}

func TestHandler_CreateAzureTranscription(t *testing.T) {
	h := newTestHandler(t)

	rec, err := doRequest(h, http.MethodPost, "/azure-transcription",
		`{"audioUrl":"https://example.com/audio.mp3","language":"uk-UA"}`, h.CreateAzureTranscription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	items, err := h.service.RecentTranscriptions(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 stored transcription, got %d", len(items))
	}
	if items[0].Source != "azure" {
		t.Errorf("expected azure source, got %s", items[0].Source)
	}
	if items[0].Language != "uk-UA" {
		t.Errorf("expected language persisted, got %q", items[0].Language)
	}
}
