package streaming

import (
	"time"

	"github.com/voiceowl/transcription-backend/internal/shared"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Terminal reports whether no further mutations are accepted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Session is the durable record of one streaming transcription interaction.
// SessionID is the sole lookup key; PartialTranscriptions is append-only in
// chunk arrival order.
type Session struct {
	ID                    uint               `gorm:"primaryKey" json:"-"`
	SessionID             string             `gorm:"uniqueIndex;not null" json:"session_id"`
	AudioURL              string             `json:"audio_url,omitempty"`
	Transcription         string             `json:"transcription"`
	PartialTranscriptions shared.StringSlice `gorm:"type:text" json:"partial_transcriptions"`
	Status                Status             `gorm:"index;default:active" json:"status"`
	ChunksReceived        int                `json:"chunks_received"`
	CreatedAt             time.Time          `json:"created_at"`
	CompletedAt           *time.Time         `json:"completed_at,omitempty"`
}

func (Session) TableName() string {
	return "streaming_sessions"
}
