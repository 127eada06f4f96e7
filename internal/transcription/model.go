package transcription

import (
	"time"

	"github.com/voiceowl/transcription-backend/internal/shared"
)

// Transcription is one completed one-shot transcription request.
type Transcription struct {
	ID            string                     `gorm:"primaryKey" json:"id"`
	AudioURL      string                     `gorm:"index;not null" json:"audio_url"`
	Transcription string                     `gorm:"not null" json:"transcription"`
	Source        shared.TranscriptionSource `gorm:"index;default:default" json:"source"`
	Language      string                     `json:"language,omitempty"`
	CreatedAt     time.Time                  `gorm:"index" json:"created_at"`
}

func (Transcription) TableName() string {
	return "transcriptions"
}
