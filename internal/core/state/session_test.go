package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/core/domain"
)

type memoryStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return v, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestSessionStore_RoundTripAcrossReload(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	want := domain.User{
		ID:          "u-1",
		Name:        "Asha",
		Email:       "asha@example.com",
		Role:        domain.RoleCandidate,
		Institution: "Pune Public School",
	}

	first := NewSessionStore(storage, "ws-1", zerolog.Nop())
	if err := first.SignIn(ctx, want); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	reloaded := NewSessionStore(storage, "ws-1", zerolog.Nop())
	got, ok := reloaded.Restore(ctx)
	if !ok {
		t.Fatalf("expected restored session")
	}
	if got != want {
		t.Fatalf("restored %+v, want %+v", got, want)
	}
	if cur, _ := reloaded.Current(); cur != want {
		t.Fatalf("current not set after restore")
	}
}

func TestSessionStore_SignOutErasesPersistedEntry(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()

	s := NewSessionStore(storage, "ws-1", zerolog.Nop())
	_ = s.SignIn(ctx, domain.User{ID: "u-1", Name: "Asha", Email: "asha@example.com", Role: domain.RoleCandidate})
	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected no current user")
	}

	if _, ok := NewSessionStore(storage, "ws-1", zerolog.Nop()).Restore(ctx); ok {
		t.Fatalf("expected no session after sign out")
	}
}

func TestSessionStore_MalformedEntryIsIgnored(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	storage.data[SessionKeyFor("ws-1")] = []byte("{not json")

	s := NewSessionStore(storage, "ws-1", zerolog.Nop())
	if _, ok := s.Restore(ctx); ok {
		t.Fatalf("malformed entry must not restore a session")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("expected signed out")
	}
}

func TestSessionStore_SignInFailureKeepsPreviousState(t *testing.T) {
	storage := newMemoryStorage()
	storage.setErr = errors.New("redis down")

	s := NewSessionStore(storage, "ws-1", zerolog.Nop())
	if err := s.SignIn(context.Background(), domain.User{ID: "u-1"}); err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("user must not be current when persisting failed")
	}
}

func TestSessionKeyFor(t *testing.T) {
	if SessionKeyFor("") != "competeConnectUser" {
		t.Fatalf("unexpected bare key")
	}
	if SessionKeyFor("ws") != "ws:competeConnectUser" {
		t.Fatalf("unexpected namespaced key")
	}
}
