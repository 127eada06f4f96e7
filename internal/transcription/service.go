package transcription

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voiceowl/transcription-backend/internal/shared"
)

const mockTranscription = "transcribed text"

// Service handles one-shot transcription requests with the default mock
// engine.
type Service struct {
	store      *Store
	downloader *Downloader
	retry      shared.RetryOptions
	logger     *slog.Logger
}

func NewService(store *Store, downloader *Downloader, retry shared.RetryOptions, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		downloader: downloader,
		retry:      retry,
		logger:     logger.With("component", "transcription_service"),
	}
}

// TranscribeAudio downloads the audio reference (mocked, with retry) and
// returns the mock transcription text.
func (s *Service) TranscribeAudio(ctx context.Context, audioURL string) (string, error) {
	_, err := shared.Retry(ctx, s.retry, func() ([]byte, error) {
		return s.downloader.Download(ctx, audioURL)
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	return mockTranscription, nil
}

func (s *Service) CreateTranscription(ctx context.Context, audioURL, text string, source shared.TranscriptionSource, language string) (*Transcription, error) {
	t := &Transcription{
		AudioURL:      audioURL,
		Transcription: text,
		Source:        source,
		Language:      language,
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("transcription created", "id", t.ID, "source", source)
	return t, nil
}

func (s *Service) RecentTranscriptions(ctx context.Context, days int) ([]*Transcription, error) {
	return s.store.FindRecent(ctx, days)
}
