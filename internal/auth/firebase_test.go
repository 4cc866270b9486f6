package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakeIDToken builds an unsigned JWT with the given exp claim.
func fakeIDToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	if err != nil {
		t.Fatal(err)
	}
	payload := base64.RawURLEncoding.EncodeToString(claims)
	return header + "." + payload + "."
}

func newTestSource(t *testing.T, handler http.HandlerFunc) (*SecureTokenSource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := NewSecureTokenSource(Config{
		APIKey:       "test-key",
		RefreshToken: "refresh-1",
	})
	if err != nil {
		t.Fatal(err)
	}
	src.endpoint = srv.URL
	return src, srv
}

func TestIDToken_ExchangeAndCache(t *testing.T) {
	calls := 0
	tok := fakeIDToken(t, time.Now().Add(time.Hour))
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q, want refresh_token", got)
		}
		fmt.Fprintf(w, `{"id_token": %q, "expires_in": "3600"}`, tok)
	})

	got, err := src.IDToken(context.Background(), false)
	if err != nil {
		t.Fatalf("IDToken() error = %v", err)
	}
	if got != tok {
		t.Error("IDToken() returned unexpected token")
	}

	// Second call within expiry must hit the cache.
	if _, err := src.IDToken(context.Background(), false); err != nil {
		t.Fatalf("cached IDToken() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("exchange calls = %d, want 1", calls)
	}
}

func TestIDToken_ForceRefresh(t *testing.T) {
	calls := 0
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"id_token": %q, "expires_in": "3600"}`,
			fakeIDToken(t, time.Now().Add(time.Hour)))
	})

	if _, err := src.IDToken(context.Background(), false); err != nil {
		t.Fatal(err)
	}
	if _, err := src.IDToken(context.Background(), true); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("exchange calls = %d, want 2 (force refresh bypasses cache)", calls)
	}
}

func TestIDToken_ExpiredCacheRefreshes(t *testing.T) {
	calls := 0
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		// Token that is already inside the leeway window.
		fmt.Fprintf(w, `{"id_token": %q, "expires_in": "30"}`,
			fakeIDToken(t, time.Now().Add(30*time.Second)))
	})

	if _, err := src.IDToken(context.Background(), false); err != nil {
		t.Fatal(err)
	}
	if _, err := src.IDToken(context.Background(), false); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("exchange calls = %d, want 2 (stale token must refresh)", calls)
	}
}

func TestIDToken_RevokedRefreshToken(t *testing.T) {
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "TOKEN_EXPIRED"}}`, http.StatusBadRequest)
	})

	_, err := src.IDToken(context.Background(), false)
	if !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("IDToken() error = %v, want ErrNotSignedIn", err)
	}
}

func TestNewSecureTokenSource_NoRefreshToken(t *testing.T) {
	_, err := NewSecureTokenSource(Config{APIKey: "k"})
	if !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("NewSecureTokenSource() error = %v, want ErrNotSignedIn", err)
	}
}

func TestStaticTokenProvider(t *testing.T) {
	p := &StaticTokenProvider{Token: "abc"}
	tok, err := p.IDToken(context.Background(), false)
	if err != nil || tok != "abc" {
		t.Errorf("IDToken() = %q, %v; want abc, nil", tok, err)
	}

	empty := &StaticTokenProvider{}
	if _, err := empty.IDToken(context.Background(), false); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("empty provider error = %v, want ErrNotSignedIn", err)
	}
}
