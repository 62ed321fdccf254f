// Package service implements rate board acquisition and page rendering.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"rateboard/internal/page"
	"rateboard/internal/provider"
	"rateboard/internal/rates"
)

// ErrPageUnavailable indicates the page template cannot be read or parsed.
var ErrPageUnavailable = errors.New("page template unavailable")

// RatesAcquirer runs the ordered rate sources. provider.SourceChain implements it.
type RatesAcquirer interface {
	Acquire(ctx context.Context) (provider.Result, error)
}

// BoardServiceInterface defines the operations the HTTP layer needs.
type BoardServiceInterface interface {
	RenderPage(ctx context.Context, opts RenderOptions) ([]byte, Outcome, error)
	Board(ctx context.Context) Board
	CheckPage() error
}

// RenderOptions selects the interactive page state rendered on the server.
type RenderOptions struct {
	MenuOpen         bool
	ProductsExpanded bool
}

// BoardService populates the site page with the current rate board.
type BoardService struct {
	sources  RatesAcquirer
	site     fs.FS
	pageName string
	loc      *time.Location
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewBoardService creates a BoardService. The page template pageName is read
// from site on every render.
func NewBoardService(sources RatesAcquirer, site fs.FS, pageName string, loc *time.Location, logger *zap.SugaredLogger) *BoardService {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &BoardService{
		sources:  sources,
		site:     site,
		pageName: pageName,
		loc:      loc,
		now:      time.Now,
		log:      logger,
	}
}

// Resolve runs the source chain once and returns the winning payload, or nil
// when every source failed. Failures are logged, never returned.
func (s *BoardService) Resolve(ctx context.Context) (*rates.Payload, Outcome) {
	res, err := s.sources.Acquire(ctx)
	out := outcomeFrom(res)

	for _, a := range res.Attempts {
		s.log.Warnw("Rate source failed", "source", a.Source, "error", a.Err)
	}
	if err != nil {
		s.log.Warnw("No rate source available, keeping fallback values", "error", err)
		return nil, out
	}
	return res.Payload, out
}

// LoadRates fills doc from the first source that yields a valid payload.
// When every source fails doc is left as it was.
func (s *BoardService) LoadRates(ctx context.Context, doc page.Document) Outcome {
	payload, out := s.Resolve(ctx)
	if payload == nil {
		return out
	}
	written := page.NewPresenter(doc, s.loc).ApplyRates(payload)
	s.log.Infow("Rates applied", "source", out.Source, "slots", written)
	return out
}

// RenderPage renders the site page with the fallback date, the requested
// toggles and the current rate board. Only an unusable page template is an
// error; rate acquisition failures degrade to the fallback values.
func (s *BoardService) RenderPage(ctx context.Context, opts RenderOptions) ([]byte, Outcome, error) {
	doc, err := s.loadPage()
	if err != nil {
		return nil, Outcome{}, err
	}

	page.NewPresenter(doc, s.loc).ApplyFallbackDate(s.now())
	if opts.MenuOpen {
		page.ToggleMenu(doc)
	} else {
		page.CloseMenu(doc)
	}
	if opts.ProductsExpanded {
		page.ToggleProducts(doc)
	}

	out := s.LoadRates(ctx, doc)

	body, err := doc.Bytes()
	if err != nil {
		return nil, out, fmt.Errorf("%w: %w", ErrPageUnavailable, err)
	}
	return body, out, nil
}

// CheckPage verifies the page template can be read and parsed.
func (s *BoardService) CheckPage() error {
	_, err := s.loadPage()
	return err
}

func (s *BoardService) loadPage() (*page.HTMLDocument, error) {
	raw, err := fs.ReadFile(s.site, s.pageName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageUnavailable, err)
	}
	doc, err := page.ParseHTML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageUnavailable, err)
	}
	return doc, nil
}
