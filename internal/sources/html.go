package sources

import (
	"context"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driven"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Ensure HTMLAdapter implements the interface.
var _ driven.SourceAdapter = (*HTMLAdapter)(nil)

// HTMLAdapter fetches a search or reference page built from the term.
type HTMLAdapter struct {
	fetcher
}

// NewHTMLAdapter creates an adapter for a page template such as
// https://docs.wpvip.com/?s={query}.
func NewHTMLAdapter(desc domain.SourceDescriptor, opts ...Option) *HTMLAdapter {
	desc.Kind = domain.AdapterHTMLScrape
	return &HTMLAdapter{fetcher: newFetcher(desc, opts)}
}

// Descriptor returns the static description of the endpoint.
func (a *HTMLAdapter) Descriptor() domain.SourceDescriptor {
	return a.desc
}

// Fetch downloads the page. Whether it holds any results is decided by extraction.
func (a *HTMLAdapter) Fetch(ctx context.Context, query domain.LookupQuery) (*domain.RawSourceResult, error) {
	target := Expand(a.desc.EndpointTemplate, query)

	logger.Debug("GET %s", target)
	body, final, err := a.get(ctx, target, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, err
	}

	return &domain.RawSourceResult{
		Kind:        domain.AdapterHTMLScrape,
		HTML:        string(body),
		DocumentURL: final,
	}, nil
}
