package session

import (
	"sync"

	"github.com/Jimmyu2foru18/Music-Website/internal/models"
	"github.com/Jimmyu2foru18/Music-Website/internal/store"
)

// Session holds the signed-in user and notifies subscribers on changes.
// It is the only component that writes the persisted current-user key.
type Session struct {
	store *store.Store

	mu      sync.RWMutex
	current *models.User
	subs    []func(*models.User)
}

// New creates a session, restoring any persisted user from a previous run.
func New(s *store.Store) (*Session, error) {
	sess := &Session{store: s}

	var u models.User
	ok, err := s.ReadJSON(store.KeyCurrentUser, &u)
	if err != nil {
		return nil, err
	}
	if ok {
		sess.current = &u
	}
	return sess, nil
}

// Current returns a copy of the signed-in user, or nil when nobody is
// signed in.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Set signs in the given user, persists it, and notifies subscribers.
func (s *Session) Set(u models.User) error {
	if err := s.store.WriteJSON(store.KeyCurrentUser, u); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &u
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		copied := u
		fn(&copied)
	}
	return nil
}

// Clear signs out the current user. Clearing an already empty session is a
// no-op and does not notify subscribers.
func (s *Session) Clear() error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	s.current = nil
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if err := s.store.Delete(store.KeyCurrentUser); err != nil {
		return err
	}

	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Subscribe registers a callback invoked after every sign-in, sign-out, or
// profile update. The callback receives nil on sign-out.
func (s *Session) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
