package transcription

import (
	"context"
	"time"

	"github.com/voiceowl/transcription-backend/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Transcription{})
}

func (s *Store) Create(ctx context.Context, t *Transcription) error {
	if t.ID == "" {
		t.ID = shared.NewID("txn_")
	}
	if t.Source == "" {
		t.Source = shared.SourceDefault
	}
	t.CreatedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Create(t).Error
}

// FindRecent returns transcriptions created within the last given number of
// days, newest first.
func (s *Store) FindRecent(ctx context.Context, days int) ([]*Transcription, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var out []*Transcription
	err := s.db.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
