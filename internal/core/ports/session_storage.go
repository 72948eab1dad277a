package ports

import "github.com/competeconnect/competition-api/internal/core/state"

// SessionStorage is the key-value surface session records are persisted to.
// Get returns domain.ErrSessionNotFound when the key is absent.
type SessionStorage = state.Storage
