package store

import "sync"

// SessionLocks serializes turn processing per session id. Turns within one
// session must run strictly sequentially because each builds on the previous
// checkpoint; turns from different sessions proceed in parallel.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionLocks() *SessionLocks {
	return &SessionLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the lock for sessionID, creating it on first use.
func (s *SessionLocks) Lock(sessionID string) {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	s.mu.Unlock()

	l.Lock()
}

// Unlock releases the lock for sessionID. Unlocking an unknown session is a no-op.
func (s *SessionLocks) Unlock(sessionID string) {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	s.mu.Unlock()

	if ok {
		l.Unlock()
	}
}
