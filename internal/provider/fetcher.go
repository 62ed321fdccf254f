package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 8 * time.Second

const maxBodyBytes = 1 << 20

// Fetcher performs time-bounded GET requests and decodes JSON bodies.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher creates a Fetcher. A nil client uses a fresh http.Client; a
// non-positive timeout uses DefaultTimeout.
func NewFetcher(client *http.Client, timeout time.Duration) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{client: client, timeout: timeout}
}

// NewFileFetcher creates a Fetcher that, besides http(s), serves file:// URLs
// from fsys the same way a static file server would.
func NewFileFetcher(fsys fs.FS, timeout time.Duration) *Fetcher {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.RegisterProtocol("file", http.NewFileTransport(http.FS(fsys)))
	return NewFetcher(&http.Client{Transport: t}, timeout)
}

// Timeout returns the per-request deadline.
func (f *Fetcher) Timeout() time.Duration { return f.timeout }

// FetchJSON GETs url and returns the decoded JSON body. The request and the
// body read are cancelled when the timeout elapses.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.transportError(ctx, url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, f.transportError(ctx, url, err)
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}
	return out, nil
}

func (f *Fetcher) transportError(ctx context.Context, url string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %s", ErrTimeout, f.timeout, url)
	}
	return fmt.Errorf("request to %s failed: %w", url, err)
}
