package provider

import (
	"context"
	"fmt"
	"strings"

	"rateboard/internal/rates"
)

var _ RatesSource = (*LocalSource)(nil)

// SourceLocal names the local rates.json source.
const SourceLocal = "local"

// DefaultLocalFile is the fallback file name relative to the site root.
const DefaultLocalFile = "rates.json"

// LocalSource reads the board from a file in the site's static directory.
// The fetcher must serve file:// URLs, see NewFileFetcher.
type LocalSource struct {
	fileName string
	fetcher  *Fetcher
}

// NewLocalSource creates a LocalSource for fileName.
func NewLocalSource(fileName string, fetcher *Fetcher) *LocalSource {
	if fileName == "" {
		fileName = DefaultLocalFile
	}
	return &LocalSource{
		fileName: strings.TrimPrefix(fileName, "/"),
		fetcher:  fetcher,
	}
}

// Name implements RatesSource.
func (s *LocalSource) Name() string { return SourceLocal }

// URL returns the file URL the source reads.
func (s *LocalSource) URL() string { return "file:///" + s.fileName }

// Acquire implements RatesSource. The file carries the payload directly,
// without an envelope.
func (s *LocalSource) Acquire(ctx context.Context) (*rates.Payload, error) {
	body, err := s.fetcher.FetchJSON(ctx, s.URL())
	if err != nil {
		return nil, err
	}
	p, err := rates.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.fileName, err)
	}
	return p, nil
}
