// Package provider acquires rate board payloads from the remote rates API and
// the site's local rates.json file.
package provider

import (
	"context"

	"rateboard/internal/rates"
)

// RatesSource is one acquisition strategy for a rate board payload. Acquire
// returns a validated payload or the reason the attempt failed.
type RatesSource interface {
	Name() string
	Acquire(ctx context.Context) (*rates.Payload, error)
}
