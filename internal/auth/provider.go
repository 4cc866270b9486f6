package auth

import (
	"context"
	"errors"
)

// ErrNotSignedIn means no credentials are available at all. Callers map
// this to their authentication-required handling; there is nothing to
// retry until the user signs in again.
var ErrNotSignedIn = errors.New("not signed in")

// TokenProvider supplies Firebase ID tokens for API calls.
type TokenProvider interface {
	// IDToken returns a currently valid ID token. With forceRefresh the
	// cached token is discarded and a fresh one is fetched even if the
	// cache has not expired yet.
	IDToken(ctx context.Context, forceRefresh bool) (string, error)
}

// StaticTokenProvider returns a fixed token. Test helper; an empty token
// behaves like a signed-out user.
type StaticTokenProvider struct {
	Token string
}

func (s *StaticTokenProvider) IDToken(_ context.Context, _ bool) (string, error) {
	if s.Token == "" {
		return "", ErrNotSignedIn
	}
	return s.Token, nil
}
