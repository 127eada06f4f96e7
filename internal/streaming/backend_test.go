package streaming

import (
	"context"
	"testing"
)

func TestMockBackend_TranscribeChunk(t *testing.T) {
	b := NewMockBackend()
	ctx := context.Background()

	tests := []struct {
		name       string
		chunkIndex int
		expected   string
	}{
		{"first chunk", 0, "Hello"},
		{"second chunk", 1, "Hello world"},
		{"last vocabulary entry", 6, "Hello world, this is a test transcription"},
		{"clamped beyond vocabulary", 42, "Hello world, this is a test transcription"},
		{"negative index clamped to first", -3, "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.TranscribeChunk(ctx, "sess-1", tt.chunkIndex)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMockBackend_PartialsGrowMonotonically(t *testing.T) {
	b := NewMockBackend()
	ctx := context.Background()

	prev := -1
	for i := 0; i < len(partialTexts); i++ {
		got, err := b.TranscribeChunk(ctx, "sess-1", i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) <= prev {
			t.Errorf("chunk %d: expected strictly increasing text length, got %d after %d", i, len(got), prev)
		}
		prev = len(got)
	}
}

func TestMockBackend_TranscribeFinal(t *testing.T) {
	b := NewMockBackend()

	got, err := b.TranscribeFinal(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello world, this is a test transcription" {
		t.Errorf("unexpected final transcription: %q", got)
	}
}
