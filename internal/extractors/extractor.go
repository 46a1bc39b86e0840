package extractors

import "github.com/custodia-labs/wpdocs/internal/core/ports/driven"

// Ensure Extractor implements the interface.
var _ driven.ContentExtractor = (*Extractor)(nil)

// Extractor is the default content extractor. It holds no state and is safe
// for concurrent use.
type Extractor struct{}

// New creates a new extractor.
func New() *Extractor {
	return &Extractor{}
}
