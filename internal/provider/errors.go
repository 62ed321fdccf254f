package provider

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the request did not complete before the fetch deadline.
var ErrTimeout = errors.New("request timed out")

// ErrExhausted is returned by SourceChain when no source produced a payload.
var ErrExhausted = errors.New("all rate sources failed")

// HTTPError reports a response outside the 2xx range.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed: %s returned status %d", e.URL, e.StatusCode)
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
