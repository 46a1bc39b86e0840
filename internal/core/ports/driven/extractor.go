package driven

import "github.com/custodia-labs/wpdocs/internal/core/domain"

// ContentExtractor converts raw payloads into document summaries.
// Extraction never fails: malformed input degrades to fewer or zero summaries.
type ContentExtractor interface {
	// FromJSONItems converts REST items. baseURL resolves relative links.
	FromJSONItems(items []map[string]any, baseURL string) []domain.DocumentSummary

	// FromHTMLDocument extracts up to five summaries from markup using the
	// named profile. documentURL is the page the markup was fetched from.
	FromHTMLDocument(doc, documentURL string, profile domain.ExtractionProfile) []domain.DocumentSummary
}
