// Package session holds the authenticated-user state for the CLI: the
// current user, the bearer token attached to API requests, and whether a
// session is active. State persists across invocations through a
// storage.Store so a login survives until an explicit logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/stocktake-dev/stocktake/internal/cli/storage"
)

// Persisted storage keys. The token is stored raw; the user is stored as
// its JSON serialization.
const (
	tokenKey = "token"
	userKey  = "user"
)

// User identifies the authenticated account. Role is an open string tag
// assigned by the server, not a closed set.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is the full client-side auth state. IsAuthenticated is true
// exactly when both User and Token are present.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
}

// Observer receives the new session state after every mutation.
type Observer func(Session)

// Store owns the session state. All mutations go through Login, Logout and
// Init; every transition replaces the state wholesale, so observers never
// see a half-updated session.
type Store struct {
	mu        sync.Mutex
	state     Session
	kv        storage.Store
	observers map[int]Observer
	nextID    int
}

// New creates an empty session store persisting through kv.
func New(kv storage.Store) *Store {
	return &Store{
		kv:        kv,
		observers: make(map[int]Observer),
	}
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the current bearer token, or empty when not authenticated.
// The API client calls this on every request rather than caching the token.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Subscribe registers an observer and returns a function that removes it.
// Observers are invoked synchronously under the store's mutation lock.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Login persists the token and user and replaces the in-memory state with
// an authenticated session.
func (s *Store) Login(token string, user User) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := s.kv.Set(tokenKey, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.Set(userKey, string(userData)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	s.set(Session{User: &user, Token: token, IsAuthenticated: true})
	return nil
}

// Logout removes the persisted keys and resets the state to the empty
// session.
func (s *Store) Logout() error {
	if err := s.kv.Delete(tokenKey); err != nil {
		return fmt.Errorf("failed to remove persisted token: %w", err)
	}
	if err := s.kv.Delete(userKey); err != nil {
		return fmt.Errorf("failed to remove persisted user: %w", err)
	}

	s.set(Session{})
	return nil
}

// Init restores the session from storage. The session is restored only
// when both keys are present and the stored user parses as JSON; anything
// else (missing keys, corrupted user data) leaves the store empty rather
// than failing, so a damaged keychain entry degrades to "logged out".
func (s *Store) Init() error {
	token, err := s.kv.Get(tokenKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load persisted token: %w", err)
	}

	userData, err := s.kv.Get(userKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load persisted user: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return nil
	}

	s.set(Session{User: &user, Token: token, IsAuthenticated: true})
	return nil
}

func (s *Store) set(state Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	for _, fn := range s.observers {
		fn(state)
	}
}
