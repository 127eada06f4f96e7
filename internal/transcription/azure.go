package transcription

import (
	"context"
	"log/slog"

	"github.com/voiceowl/transcription-backend/internal/shared"
)

const defaultLanguage = "en-US"

// AzureService transcribes audio through Azure Speech-to-Text. Without
// credentials it degrades to a deterministic mock so the endpoint stays
// usable in development.
type AzureService struct {
	speechKey    string
	speechRegion string
	configured   bool
	downloader   *Downloader
	retry        shared.RetryOptions
	logger       *slog.Logger
}

type AzureConfig struct {
	SpeechKey    string
	SpeechRegion string
}

func NewAzureService(cfg AzureConfig, downloader *Downloader, retry shared.RetryOptions, logger *slog.Logger) *AzureService {
	retry.Exponential = true
	s := &AzureService{
		speechKey:    cfg.SpeechKey,
		speechRegion: cfg.SpeechRegion,
		configured:   cfg.SpeechKey != "" && cfg.SpeechRegion != "",
		downloader:   downloader,
		retry:        retry,
		logger:       logger.With("component", "azure_service"),
	}

	if s.configured {
		s.logger.Info("azure speech service configured", "region", cfg.SpeechRegion)
	} else {
		s.logger.Warn("azure speech credentials not provided, using mock transcription")
	}
	return s
}

func (s *AzureService) IsAvailable() bool {
	return s.configured
}

// TranscribeAudio returns the Azure transcription for the audio reference.
// Unconfigured credentials and download failures both fall back to the mock
// result rather than failing the request.
func (s *AzureService) TranscribeAudio(ctx context.Context, audioURL, language string) (string, error) {
	if language == "" {
		language = defaultLanguage
	}

	if !s.configured {
		return s.mockTranscribe(audioURL), nil
	}

	_, err := shared.Retry(ctx, s.retry, func() ([]byte, error) {
		return s.downloader.Download(ctx, audioURL)
	})
	if err != nil {
		s.logger.Error("azure transcription error, falling back to mock", "error", err)
		return s.mockTranscribe(audioURL), nil
	}

	// The recognition call itself is mocked; a real integration would stream
	// the downloaded audio into the Azure SDK here, using language.
	s.logger.Debug("azure transcription performed", "language", language)
	return s.mockTranscribe(audioURL), nil
}

func (s *AzureService) mockTranscribe(audioURL string) string {
	return "Azure transcribed text from " + audioURL
}
