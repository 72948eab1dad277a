package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

// SessionKey is the fixed key the session record is stored under.
const SessionKey = "competeConnectUser"

// Storage is the key-value surface the session record is persisted to.
// Get returns domain.ErrSessionNotFound when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionKeyFor scopes SessionKey to one workspace in shared storage.
func SessionKeyFor(namespace string) string {
	if namespace == "" {
		return SessionKey
	}
	return namespace + ":" + SessionKey
}

// SessionStore holds at most one current user and mirrors it to storage.
type SessionStore struct {
	mu      sync.RWMutex
	storage Storage
	key     string
	current *domain.User
	log     zerolog.Logger
}

func NewSessionStore(storage Storage, namespace string, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		storage: storage,
		key:     SessionKeyFor(namespace),
		log:     log,
	}
}

// Restore loads the persisted user, if any. A missing, unreadable or
// malformed entry leaves the session signed out; it is never an error.
func (s *SessionStore) Restore(ctx context.Context) (domain.User, bool) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("session restore failed, starting signed out")
		}
		return domain.User{}, false
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("stored session is not parseable, ignoring it")
		return domain.User{}, false
	}
	if u.ID == "" {
		s.log.Warn().Str("key", s.key).Msg("stored session has no id, ignoring it")
		return domain.User{}, false
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u, true
}

// SignIn persists u and makes it the current user. When persisting fails the
// current user is left unchanged.
func (s *SessionStore) SignIn(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return nil
}

// SignOut clears the current user first, then erases the persisted entry.
func (s *SessionStore) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("erase session: %w", err)
	}
	return nil
}

func (s *SessionStore) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}
