package streaming

import "sync"

// Registry maps connection ids to session ids for the lifetime of a
// connection. Per-connection resources (timers, buffers) are owned by the
// Stream handling that connection, so the registry only carries what must be
// reachable from outside the connection's goroutine. It is rebuilt empty on
// process restart; sessions orphaned by a crash stay active in the store.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]string),
	}
}

func (r *Registry) Register(connectionID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connectionID] = sessionID
}

// SessionFor returns the session bound to a connection, if any.
func (r *Registry) SessionFor(connectionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.sessions[connectionID]
	return id, ok
}

func (r *Registry) Unregister(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, connectionID)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
