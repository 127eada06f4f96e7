package streaming

import "context"

// Backend converts chunk context into transcript text. Implementations may
// be a real ASR integration; the controller only depends on this capability.
type Backend interface {
	TranscribeChunk(ctx context.Context, sessionID string, chunkIndex int) (string, error)
	TranscribeFinal(ctx context.Context, sessionID string) (string, error)
}

// partialTexts is the bounded vocabulary of incremental outputs the mock
// backend cycles through, indexed by chunk index and clamped at the end.
var partialTexts = []string{
	"Hello",
	"Hello world",
	"Hello world, this",
	"Hello world, this is",
	"Hello world, this is a",
	"Hello world, this is a test",
	"Hello world, this is a test transcription",
}

// MockBackend is a stand-in for a streaming ASR engine.
type MockBackend struct{}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (b *MockBackend) TranscribeChunk(_ context.Context, _ string, chunkIndex int) (string, error) {
	if chunkIndex < 0 {
		chunkIndex = 0
	}
	if chunkIndex >= len(partialTexts) {
		chunkIndex = len(partialTexts) - 1
	}
	return partialTexts[chunkIndex], nil
}

func (b *MockBackend) TranscribeFinal(_ context.Context, _ string) (string, error) {
	return partialTexts[len(partialTexts)-1], nil
}
