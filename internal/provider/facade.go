package provider

import (
	"context"
	"errors"
	"fmt"

	"rateboard/internal/rates"
)

// Attempt records one source that was tried and why it failed.
type Attempt struct {
	Source string
	Err    error
}

// Result is the outcome of a SourceChain run. Payload is nil when every
// source failed.
type Result struct {
	Payload  *rates.Payload
	Source   string
	Attempts []Attempt
}

// SourceChain tries sources in order and stops at the first payload.
type SourceChain struct {
	sources []RatesSource
}

// NewSourceChain creates a SourceChain over the given sources.
func NewSourceChain(sources ...RatesSource) *SourceChain {
	return &SourceChain{
		sources: sources,
	}
}

// Sources returns the names of the chained sources in order.
func (c *SourceChain) Sources() []string {
	names := make([]string, 0, len(c.sources))
	for _, s := range c.sources {
		names = append(names, s.Name())
	}
	return names
}

// Acquire calls sources sequentially until one succeeds. Each source is
// tried once; a later source starts only after the previous one returned.
func (c *SourceChain) Acquire(ctx context.Context) (Result, error) {
	var res Result
	var errs []error
	for _, src := range c.sources {
		p, err := src.Acquire(ctx)
		if err == nil && p != nil {
			res.Payload = p
			res.Source = src.Name()
			return res, nil
		}
		if err == nil {
			err = rates.ErrInvalidShape
		}
		res.Attempts = append(res.Attempts, Attempt{Source: src.Name(), Err: err})
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
	}

	if len(errs) == 0 {
		return res, fmt.Errorf("%w: no sources configured", ErrExhausted)
	}
	return res, fmt.Errorf("%w: %w", ErrExhausted, errors.Join(errs...))
}
