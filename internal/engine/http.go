package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// httpTransport posts requests to a bridge service at baseURL/<op>.
type httpTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for a bridge service. A zero timeout
// defaults to 5 minutes; grafting large models is slow.
func NewHTTPClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Client{t: &httpTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}}
}

func (t *httpTransport) roundTrip(ctx context.Context, op string, body []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", t.baseURL, op)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// The bridge reports engine failures in the envelope with a 4xx/5xx
	// status; hand those through so the message is not lost.
	if resp.StatusCode != http.StatusOK && !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, fmt.Errorf("bridge returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}
