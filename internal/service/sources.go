package service

import (
	"io/fs"

	"rateboard/internal/config"
	"rateboard/internal/provider"
)

// NewRatesChain builds the acquisition order: the remote API when one is
// configured, then the local file from site.
func NewRatesChain(cfg config.RatesConfig, site fs.FS) *provider.SourceChain {
	fetcher := provider.NewFileFetcher(site, cfg.Timeout())

	var sources []provider.RatesSource
	if cfg.APIURL != "" {
		sources = append(sources, provider.NewRemoteSource(cfg.APIURL, fetcher))
	}
	sources = append(sources, provider.NewLocalSource(cfg.LocalFile, fetcher))

	return provider.NewSourceChain(sources...)
}
