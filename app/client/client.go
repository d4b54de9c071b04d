// Package client holds the HTTP collaborators of the billing service: the
// user directory, the address directory, and the invoice service. All
// responses are request-scoped; nothing fetched here is ever cached or
// persisted.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError carries a downstream HTTP failure so callers can surface the
// original status instead of collapsing everything into a 500.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed: status=%d body=%s", e.Service, e.StatusCode, e.Body)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func getJSON(ctx context.Context, client *http.Client, service, url, token string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return doJSON(client, service, req, out)
}

func postJSON(ctx context.Context, client *http.Client, service, url, token string, in, out interface{}) (bool, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return doJSON(client, service, req, out)
}

// doJSON returns false when the service answered successfully but with an
// empty or null body, which downstream services use to signal "no result".
func doJSON(client *http.Client, service string, req *http.Request, out interface{}) (bool, error) {
	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode >= 400 {
		return false, &StatusError{Service: service, StatusCode: resp.StatusCode, Body: string(body)}
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return false, nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, err
	}
	return true, nil
}

func joinURL(baseURL, segment string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/" + segment
}
