package streaming

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/voiceowl/transcription-backend/internal/shared"
	"gorm.io/gorm"
)

// Store persists streaming sessions. Mutations on the same session are
// serialized through a per-session lock so append-and-increment stays atomic
// under concurrent chunk handlers; different sessions never contend.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Session{})
}

func (s *Store) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *Store) releaseLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, sessionID)
}

// Create inserts the session record. The unique index on session_id is the
// arbiter for concurrent creates; duplicates come back as ErrConflict.
func (s *Store) Create(ctx context.Context, sess *Session) error {
	if sess.Status == "" {
		sess.Status = StatusActive
	}
	if sess.PartialTranscriptions == nil {
		sess.PartialTranscriptions = shared.StringSlice{}
	}
	sess.CreatedAt = time.Now().UTC()

	err := s.db.WithContext(ctx).Create(sess).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrConflict
	}
	return err
}

func (s *Store) GetBySessionID(ctx context.Context, sessionID string) (*Session, error) {
	var sess Session
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// AppendPartial pushes text onto the session's partial list and increments
// ChunksReceived in one atomic step. Terminal sessions reject the append.
func (s *Store) AppendPartial(ctx context.Context, sessionID, text string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess Session
		err := tx.Where("session_id = ?", sessionID).First(&sess).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		if err != nil {
			return err
		}
		if sess.Status.Terminal() {
			return shared.ErrInvalidState
		}

		partials := append(sess.PartialTranscriptions, text)
		return tx.Model(&Session{}).Where("session_id = ?", sessionID).Updates(map[string]any{
			"partial_transcriptions": partials,
			"chunks_received":        sess.ChunksReceived + 1,
		}).Error
	})
}

// Complete transitions the session to completed and records the final
// transcription. Already-terminal sessions return ErrInvalidState.
func (s *Store) Complete(ctx context.Context, sessionID, finalText string) error {
	return s.finalize(ctx, sessionID, StatusCompleted, finalText)
}

// Fail transitions the session to error, storing the failure message in the
// transcription field.
func (s *Store) Fail(ctx context.Context, sessionID, message string) error {
	return s.finalize(ctx, sessionID, StatusError, message)
}

func (s *Store) finalize(ctx context.Context, sessionID string, status Status, text string) error {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess Session
		err := tx.Where("session_id = ?", sessionID).First(&sess).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		if err != nil {
			return err
		}
		if sess.Status.Terminal() {
			return shared.ErrInvalidState
		}

		now := time.Now().UTC()
		return tx.Model(&Session{}).Where("session_id = ?", sessionID).Updates(map[string]any{
			"status":        status,
			"transcription": text,
			"completed_at":  &now,
		}).Error
	})
	if err == nil {
		s.releaseLock(sessionID)
	}
	return err
}
