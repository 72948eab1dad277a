package domain

import "errors"

var (
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidUser       = errors.New("invalid user")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrSignInRequired    = errors.New("sign in required")
	ErrUnknownMenuItem   = errors.New("unknown menu item")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrSessionNotFound   = errors.New("session not found")

	// Generation failures. The view reports them as a failed search.
	ErrMissingCredential = errors.New("generation credential is not configured")
	ErrMalformedResponse = errors.New("generation response is not valid competition JSON")
	ErrGenerationFailed  = errors.New("generation service request failed")
)
