package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"rateboard/internal/rates"
)

var _ RatesSource = (*RemoteSource)(nil)

// SourceRemote names the remote rates API source.
const SourceRemote = "remote"

// RemoteSource fetches the board from the configured rates API. Responses
// may wrap the payload in a {"data": ...} envelope.
type RemoteSource struct {
	baseURL string
	fetcher *Fetcher
	now     func() time.Time
}

// NewRemoteSource creates a RemoteSource for baseURL.
func NewRemoteSource(baseURL string, fetcher *Fetcher) *RemoteSource {
	return &RemoteSource{
		baseURL: baseURL,
		fetcher: fetcher,
		now:     time.Now,
	}
}

// Name implements RatesSource.
func (s *RemoteSource) Name() string { return SourceRemote }

// requestURL appends a millisecond timestamp as the "t" query parameter so
// intermediate caches never answer for the API. A configured query string is
// kept as written.
func (s *RemoteSource) requestURL() (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid rates API URL %q: %w", s.baseURL, err)
	}
	ts := "t=" + strconv.FormatInt(s.now().UnixMilli(), 10)
	if u.RawQuery == "" {
		u.RawQuery = ts
	} else {
		u.RawQuery += "&" + ts
	}
	return u.String(), nil
}

// Acquire implements RatesSource.
func (s *RemoteSource) Acquire(ctx context.Context) (*rates.Payload, error) {
	reqURL, err := s.requestURL()
	if err != nil {
		return nil, err
	}
	body, err := s.fetcher.FetchJSON(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	p, err := rates.Decode(rates.UnwrapEnvelope(body))
	if err != nil {
		return nil, fmt.Errorf("rates API response: %w", err)
	}
	return p, nil
}
