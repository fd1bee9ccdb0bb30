package session

import (
	"sync"

	"silent-auction-client/internal/domain/shared"
)

// Store holds the signed-in user for the lifetime of the process.
// Writes replace the whole user atomically and reads return a copy,
// so no caller ever holds a reference into the stored value.
type Store struct {
	mu   sync.RWMutex
	user *shared.User
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the current user. ok is false when nobody is
// signed in.
func (s *Store) Get() (user shared.User, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return shared.User{}, false
	}
	return *s.user, true
}

// Set replaces the session with the given user. Partial edits must
// read, merge and write the whole user; Set never merges.
func (s *Store) Set(user shared.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := user
	s.user = &stored
}

// Clear ends the session
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
}
