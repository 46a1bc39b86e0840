package driven

import (
	"context"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// SourceAdapter wraps one remote endpoint behind a uniform fetch contract.
// Implementations are stateless: the same query yields the same request and
// no side effects beyond the network call.
type SourceAdapter interface {
	// Descriptor returns the static description of the endpoint.
	Descriptor() domain.SourceDescriptor

	// Fetch performs exactly one attempt against the endpoint.
	// Failures are returned as *domain.ErrorReport with a classified kind.
	// A successful response with no items is not an error.
	Fetch(ctx context.Context, query domain.LookupQuery) (*domain.RawSourceResult, error)
}
