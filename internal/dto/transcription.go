package dto

import "time"

type CreateTranscriptionRequest struct {
	AudioURL string `json:"audioUrl" example:"https://example.com/audio.mp3"`
	Language string `json:"language,omitempty" example:"en-US"`
}

type CreateTranscriptionResponse struct {
	ID string `json:"id" example:"txn_6f1d2c3b4a5e6f7a8b9c0d1e2f3a4b5c"`
}

type TranscriptionResponse struct {
	ID            string    `json:"id"`
	AudioURL      string    `json:"audio_url"`
	Transcription string    `json:"transcription"`
	Source        string    `json:"source" example:"default"`
	Language      string    `json:"language,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListTranscriptionsResponse struct {
	Count          int                     `json:"count"`
	Transcriptions []TranscriptionResponse `json:"transcriptions"`
}
