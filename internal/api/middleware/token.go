package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "competeconnect"

var errInvalidToken = errors.New("invalid workspace token")

// WorkspaceTokens signs and verifies the HS256 tokens that name a workspace.
// The token carries no user data; the session lives in the workspace.
type WorkspaceTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewWorkspaceTokens(secret string, ttl time.Duration) *WorkspaceTokens {
	return &WorkspaceTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for workspaceID and its expiry.
func (t *WorkspaceTokens) Issue(workspaceID string) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   workspaceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign workspace token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies raw and returns the workspace id it names.
func (t *WorkspaceTokens) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}
