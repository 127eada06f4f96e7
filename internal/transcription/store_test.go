package transcription

import (
	"context"
	"testing"
	"time"

	"github.com/voiceowl/transcription-backend/internal/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return store
}

func TestStore_Create(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tr := &Transcription{
		AudioURL:      "https://example.com/a.mp3",
		Transcription: "transcribed text",
	}
	if err := store.Create(ctx, tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.ID == "" {
		t.Error("id should be generated")
	}
	if tr.Source != shared.SourceDefault {
		t.Errorf("expected default source, got %s", tr.Source)
	}
	if tr.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestStore_FindRecent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	recent := &Transcription{AudioURL: "https://example.com/new.mp3", Transcription: "new"}
	if err := store.Create(ctx, recent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	old := &Transcription{
		ID:            shared.NewID("txn_"),
		AudioURL:      "https://example.com/old.mp3",
		Transcription: "old",
		Source:        shared.SourceDefault,
		CreatedAt:     time.Now().UTC().AddDate(0, 0, -60),
	}
	if err := store.db.Create(old).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.FindRecent(ctx, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 recent transcription, got %d", len(got))
	}
	if got[0].AudioURL != "https://example.com/new.mp3" {
		t.Errorf("unexpected result: %s", got[0].AudioURL)
	}

	all, err := store.FindRecent(ctx, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 transcriptions in 90 days, got %d", len(all))
	}
	if !all[0].CreatedAt.After(all[1].CreatedAt) {
		t.Error("expected newest first ordering")
	}
}

func TestStore_FindRecent_DefaultsWindow(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.FindRecent(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
