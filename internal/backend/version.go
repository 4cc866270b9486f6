package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/mod/semver"
)

// Health is the server's health/compatibility report.
type Health struct {
	Status           string `json:"status"`
	MinClientVersion string `json:"min_client_version"`
}

// Health fetches the server health document. The endpoint is public and
// carries no auth header.
func (c *HTTPClient) Health(ctx context.Context) (*Health, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Endpoint: "/v1/health", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Endpoint: "/v1/health", StatusCode: resp.StatusCode}
	}

	var h Health
	if err := decodeJSON(resp.Body, &h); err != nil {
		return nil, &RequestError{Endpoint: "/v1/health", Err: err}
	}
	return &h, nil
}

// CheckCompatibility compares the running client version against the
// server's minimum. Dev builds ("(devel)" or empty) always pass so local
// work is never blocked.
func CheckCompatibility(h *Health, clientVersion string) error {
	if h == nil || h.MinClientVersion == "" {
		return nil
	}
	if clientVersion == "" || clientVersion == "(devel)" {
		return nil
	}

	min := canonical(h.MinClientVersion)
	cur := canonical(clientVersion)
	if !semver.IsValid(min) || !semver.IsValid(cur) {
		return nil
	}

	if semver.Compare(cur, min) < 0 {
		return fmt.Errorf("%w: server requires >= %s, running %s",
			ErrClientOutdated, h.MinClientVersion, clientVersion)
	}
	return nil
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
