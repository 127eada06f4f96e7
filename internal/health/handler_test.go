package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/voiceowl/transcription-backend/internal/streaming"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func TestHandler_Liveness(t *testing.T) {
	h := NewHandler(setupTestDB(t), nil, streaming.NewRegistry(), "test")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	if err := h.Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Readiness_DegradedWithoutRedis(t *testing.T) {
	registry := streaming.NewRegistry()
	registry.Register("conn-1", "sess-1")

	// unreachable redis degrades but does not fail readiness
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	h := NewHandler(setupTestDB(t), redisClient, registry, "test")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != StatusDegraded {
		t.Errorf("expected degraded status, got %s", resp.Status)
	}
	if resp.Components["database"].Status != StatusHealthy {
		t.Errorf("expected healthy database, got %+v", resp.Components["database"])
	}
	if resp.Stats.ActiveStreams != 1 {
		t.Errorf("expected 1 active stream, got %d", resp.Stats.ActiveStreams)
	}
}

func TestComputeOverallStatus(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]ComponentStatus
		expected   Status
	}{
		{
			name: "all healthy",
			components: map[string]ComponentStatus{
				"database": {Status: StatusHealthy},
				"redis":    {Status: StatusHealthy},
			},
			expected: StatusHealthy,
		},
		{
			name: "database down",
			components: map[string]ComponentStatus{
				"database": {Status: StatusUnhealthy},
				"redis":    {Status: StatusHealthy},
			},
			expected: StatusUnhealthy,
		},
		{
			name: "redis down",
			components: map[string]ComponentStatus{
				"database": {Status: StatusHealthy},
				"redis":    {Status: StatusUnhealthy},
			},
			expected: StatusDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeOverallStatus(tt.components); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
