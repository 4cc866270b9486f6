package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// secureTokenURL is the Firebase token exchange endpoint.
const secureTokenURL = "https://securetoken.googleapis.com/v1/token"

// expiryLeeway is how long before the recorded expiry a cached token is
// considered stale. Covers clock skew and in-flight request time.
const expiryLeeway = 2 * time.Minute

// Config holds Firebase credentials for the token source.
type Config struct {
	// APIKey is the Firebase web API key of the JEEVibe project.
	APIKey string

	// RefreshToken is the long-lived token issued at sign-in.
	RefreshToken string

	// Timeout for a single token exchange. Default: 15s.
	Timeout time.Duration
}

// ConfigFromEnv reads credentials from JEEVIBE_FIREBASE_API_KEY and
// JEEVIBE_FIREBASE_REFRESH_TOKEN.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:       os.Getenv("JEEVIBE_FIREBASE_API_KEY"),
		RefreshToken: os.Getenv("JEEVIBE_FIREBASE_REFRESH_TOKEN"),
		Timeout:      15 * time.Second,
	}
	return cfg
}

// SecureTokenSource exchanges a refresh token for ID tokens and caches
// the result until shortly before expiry. Safe for concurrent use.
type SecureTokenSource struct {
	cfg      Config
	client   *http.Client
	endpoint string

	mu      sync.Mutex
	token   string
	expiry  time.Time
	refresh string // rotated refresh token, if the server issued one
}

// NewSecureTokenSource creates a token source. Returns ErrNotSignedIn
// when no refresh token is configured, so callers can degrade early
// instead of failing on the first API call.
func NewSecureTokenSource(cfg Config) (*SecureTokenSource, error) {
	if cfg.RefreshToken == "" {
		return nil, ErrNotSignedIn
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("firebase API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SecureTokenSource{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: secureTokenURL,
		refresh:  cfg.RefreshToken,
	}, nil
}

// IDToken returns a cached token when still fresh, otherwise performs
// the exchange. forceRefresh bypasses the cache.
func (s *SecureTokenSource) IDToken(ctx context.Context, forceRefresh bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !forceRefresh && s.token != "" && time.Until(s.expiry) > expiryLeeway {
		return s.token, nil
	}
	return s.exchangeLocked(ctx)
}

// exchangeLocked performs the refresh-token grant. Caller holds s.mu.
func (s *SecureTokenSource) exchangeLocked(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {s.refresh},
	}

	u := fmt.Sprintf("%s?key=%s", s.endpoint, url.QueryEscape(s.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// An invalid or revoked refresh token means signed out, not a
		// transient failure.
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return "", ErrNotSignedIn
		}
		return "", fmt.Errorf("token exchange: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		IDToken      string `json:"id_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    string `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.IDToken == "" {
		return "", fmt.Errorf("token exchange returned no id_token")
	}

	s.token = payload.IDToken
	if payload.RefreshToken != "" {
		s.refresh = payload.RefreshToken
	}
	s.expiry = resolveExpiry(payload.IDToken, payload.ExpiresIn)

	return s.token, nil
}

// resolveExpiry prefers the exp claim embedded in the token itself and
// falls back to the expires_in field. The claim read is unverified;
// signature verification is the server's concern, the client only needs
// a refresh deadline.
func resolveExpiry(idToken, expiresIn string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	if secs, err := strconv.Atoi(expiresIn); err == nil && secs > 0 {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}

	// No usable expiry; force a refresh on the next call.
	return time.Now()
}
