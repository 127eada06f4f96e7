package main

import (
	_ "github.com/voiceowl/transcription-backend/docs"
	"github.com/voiceowl/transcription-backend/internal/bootstrap"
)

// @title VoiceOwl Transcription API
// @version 1.0.0
// @description HTTP/WebSocket service for mocked speech-to-text transcription

// @host localhost:8080
// @BasePath /v1

func main() {
	bootstrap.Run()
}
