package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driven"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Ensure JSONAdapter implements the interface.
var _ driven.SourceAdapter = (*JSONAdapter)(nil)

// RESTFields are the fields requested from WordPress REST endpoints.
const RESTFields = "title,excerpt,content,link"

// JSONAdapter queries a WordPress REST search endpoint.
type JSONAdapter struct {
	fetcher
}

// NewJSONAdapter creates an adapter for a REST collection endpoint such as
// https://developer.wordpress.org/wp-json/wp/v2/posts.
func NewJSONAdapter(desc domain.SourceDescriptor, opts ...Option) *JSONAdapter {
	desc.Kind = domain.AdapterJSONAPI
	return &JSONAdapter{fetcher: newFetcher(desc, opts)}
}

// Descriptor returns the static description of the endpoint.
func (a *JSONAdapter) Descriptor() domain.SourceDescriptor {
	return a.desc
}

// Fetch runs one search request. An empty array, or a body that is not a
// JSON array, yields zero items.
func (a *JSONAdapter) Fetch(ctx context.Context, query domain.LookupQuery) (*domain.RawSourceResult, error) {
	target, err := a.searchURL(query)
	if err != nil {
		return nil, &domain.ErrorReport{
			Kind:    domain.ErrorNetwork,
			Message: fmt.Sprintf("invalid endpoint %q", a.desc.EndpointTemplate),
			TierID:  a.desc.ID,
			Err:     err,
		}
	}

	logger.Debug("GET %s", target)
	body, final, err := a.get(ctx, target, "application/json")
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		logger.Warn("Degraded: %s returned a non-array body: %v", a.desc.ID, err)
		items = nil
	}

	return &domain.RawSourceResult{
		Kind:        domain.AdapterJSONAPI,
		Items:       items,
		DocumentURL: final,
	}, nil
}

func (a *JSONAdapter) searchURL(query domain.LookupQuery) (string, error) {
	u, err := url.Parse(Expand(a.desc.EndpointTemplate, query))
	if err != nil {
		return "", err
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("endpoint is not absolute: %s", u)
	}

	params := u.Query()
	params.Set("search", query.Term)
	params.Set("per_page", strconv.Itoa(a.opts.pageSize))
	params.Set("_fields", RESTFields)
	u.RawQuery = params.Encode()

	return u.String(), nil
}
