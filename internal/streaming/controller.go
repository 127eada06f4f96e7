package streaming

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/voiceowl/transcription-backend/internal/shared"
)

const defaultCompletionThreshold = 5

// Availability reports whether the backing store is reachable. It is
// consulted before every store operation: Start fails fast when the store is
// down, Chunk and End degrade to best-effort no-ops.
type Availability interface {
	IsAvailable() bool
}

// Controller owns the lifecycle of streaming sessions: creation, chunk
// ingestion, partial/final emission and finalization on end or disconnect.
type Controller struct {
	store     *Store
	registry  *Registry
	backend   Backend
	avail     Availability
	retry     shared.RetryOptions
	threshold int
	logger    *slog.Logger
}

type ControllerConfig struct {
	Store        *Store
	Registry     *Registry
	Backend      Backend
	Availability Availability
	Retry        shared.RetryOptions
	// CompletionThreshold is the chunk index at which the session is
	// finalized. Zero means the default of 5.
	CompletionThreshold int
	Logger              *slog.Logger
}

func NewController(cfg ControllerConfig) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	threshold := cfg.CompletionThreshold
	if threshold <= 0 {
		threshold = defaultCompletionThreshold
	}
	return &Controller{
		store:     cfg.Store,
		registry:  cfg.Registry,
		backend:   cfg.Backend,
		avail:     cfg.Availability,
		retry:     cfg.Retry,
		threshold: threshold,
		logger:    cfg.Logger.With("component", "streaming_controller"),
	}
}

func (c *Controller) Registry() *Registry {
	return c.registry
}

func (c *Controller) available() error {
	if !c.avail.IsAvailable() {
		return shared.ErrUnavailable
	}
	return nil
}

func (c *Controller) transcribeChunk(ctx context.Context, sessionID string, chunkIndex int) (string, error) {
	text, err := shared.Retry(ctx, c.retry, func() (string, error) {
		return c.backend.TranscribeChunk(ctx, sessionID, chunkIndex)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", shared.ErrBackendFailure, err)
	}
	return text, nil
}

func (c *Controller) transcribeFinal(ctx context.Context, sessionID string) (string, error) {
	text, err := shared.Retry(ctx, c.retry, func() (string, error) {
		return c.backend.TranscribeFinal(ctx, sessionID)
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", shared.ErrBackendFailure, err)
	}
	return text, nil
}

// Stream is the per-connection session handle. All methods must be called
// from the single goroutine that reads the connection; that goroutine is the
// per-session queue which keeps chunk handling in arrival order.
type Stream struct {
	ctrl      *Controller
	connID    string
	sessionID string
	emit      func(Event)
	log       *slog.Logger
	started   bool
	finalized bool
}

// Accept handles a new connection: it assigns a fresh session id and emits
// session:created. Nothing is written to the store until Start.
func (c *Controller) Accept(emit func(Event)) *Stream {
	sessionID := uuid.New().String()
	connID := shared.NewID("conn_")

	s := &Stream{
		ctrl:   c,
		connID: connID,
		emit:   emit,
		log:    c.logger.With("session_id", sessionID),
	}
	s.sessionID = sessionID

	s.log.Info("client connected", "connection_id", connID)
	emit(sessionCreated(sessionID))
	return s
}

func (s *Stream) SessionID() string {
	return s.sessionID
}

// Start creates the durable session record and activates the stream. When
// the store is unreachable or the write fails the stream stays in its
// pre-start state so the client may retry.
func (s *Stream) Start(ctx context.Context, audioURL string) {
	if err := s.ctrl.available(); err != nil {
		s.log.Warn("start rejected", "error", err)
		s.emit(transcriptionError(s.sessionID, "database not connected"))
		return
	}

	sess := &Session{
		SessionID:             s.sessionID,
		AudioURL:              audioURL,
		Transcription:         "",
		PartialTranscriptions: shared.StringSlice{},
		Status:                StatusActive,
	}
	if err := s.ctrl.store.Create(ctx, sess); err != nil {
		s.log.Error("failed to create session", "error", err)
		s.emit(transcriptionError(s.sessionID, "failed to start session"))
		return
	}

	s.ctrl.registry.Register(s.connID, s.sessionID)
	s.started = true

	s.log.Info("session started", "audio_url", audioURL)
	s.emit(sessionStarted(s.sessionID))
}

// Chunk derives a partial transcription for one audio chunk, persists it and
// emits transcription:partial. Chunks arriving before Start succeeded are
// ignored. Reaching the completion threshold finalizes the session and emits
// transcription:final exactly once. Store failures on this path are logged
// and swallowed; the stream keeps going.
func (s *Stream) Chunk(ctx context.Context, chunkIndex int, _ []byte) {
	if !s.started {
		s.log.Warn("chunk ignored, session not started", "chunk_index", chunkIndex)
		return
	}
	if err := s.ctrl.available(); err != nil {
		s.log.Warn("chunk ignored", "chunk_index", chunkIndex, "error", err)
		return
	}
	if s.finalized {
		s.log.Debug("chunk ignored, session already finalized", "chunk_index", chunkIndex)
		return
	}

	partial, err := s.ctrl.transcribeChunk(ctx, s.sessionID, chunkIndex)
	if err != nil {
		s.log.Error("backend failed to transcribe chunk", "chunk_index", chunkIndex, "error", err)
		return
	}

	if err := s.ctrl.store.AppendPartial(ctx, s.sessionID, partial); err != nil {
		// Lossy by design on this path: the chunk's text is lost from the
		// durable history but the event is still delivered.
		s.log.Error("failed to save partial transcription", "chunk_index", chunkIndex, "error", err)
	}

	s.emit(transcriptionPartial(s.sessionID, partial))

	if chunkIndex >= s.ctrl.threshold {
		s.finalize(ctx)
	}
}

func (s *Stream) finalize(ctx context.Context) {
	final, err := s.ctrl.transcribeFinal(ctx, s.sessionID)
	if err != nil {
		s.log.Error("backend failed to produce final transcription", "error", err)
		return
	}

	if err := s.ctrl.store.Complete(ctx, s.sessionID, final); err != nil {
		s.log.Error("failed to complete session", "error", err)
	}

	s.finalized = true
	s.log.Info("session completed", "transcription", final)
	s.emit(transcriptionFinal(s.sessionID, final))
}

// End terminates the session gracefully, finalizing with the best available
// transcription. Failures fall back to marking the session errored; the
// registry entry is always released.
func (s *Stream) End(ctx context.Context) {
	defer s.cleanup()

	if !s.started {
		return
	}
	if err := s.ctrl.available(); err != nil {
		s.log.Warn("end ignored", "error", err)
		return
	}

	sess, err := s.ctrl.store.GetBySessionID(ctx, s.sessionID)
	if err != nil {
		s.log.Error("failed to load session on end", "error", err)
		s.failBestEffort(ctx, err.Error())
		return
	}
	if sess.Status != StatusActive {
		return
	}

	final := sess.Transcription
	if final == "" && len(sess.PartialTranscriptions) > 0 {
		final = sess.PartialTranscriptions[len(sess.PartialTranscriptions)-1]
	}

	if err := s.ctrl.store.Complete(ctx, s.sessionID, final); err != nil {
		s.log.Error("failed to complete session on end", "error", err)
		s.failBestEffort(ctx, err.Error())
		return
	}

	s.finalized = true
	s.log.Info("session ended", "transcription", final)
	s.emit(sessionEnded(s.sessionID, StatusCompleted, final))
}

func (s *Stream) failBestEffort(ctx context.Context, message string) {
	if err := s.ctrl.store.Fail(ctx, s.sessionID, message); err != nil {
		s.log.Error("failed to mark session errored", "error", err)
	}
}

// Disconnect releases the connection's registry entry. It never finalizes:
// an active session whose client vanished stays active until a future end or
// an external reconciliation acts on it.
func (s *Stream) Disconnect() {
	s.log.Info("client disconnected", "connection_id", s.connID)
	s.cleanup()
}

func (s *Stream) cleanup() {
	s.ctrl.registry.Unregister(s.connID)
}
