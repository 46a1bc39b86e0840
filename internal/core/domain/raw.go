package domain

// RawSourceResult is the payload fetched by a source adapter.
// It exists only inside one tier's execution.
type RawSourceResult struct {
	// Kind tells which of Items or HTML is populated.
	Kind AdapterKind

	// Items holds the decoded JSON objects of a JSON API response.
	Items []map[string]any

	// HTML holds the raw markup of an HTML page.
	HTML string

	// DocumentURL is the final URL the payload was fetched from.
	// Relative links are resolved against its origin.
	DocumentURL string
}

// Empty returns true if the result carries no items and no markup.
func (r *RawSourceResult) Empty() bool {
	if r == nil {
		return true
	}
	return len(r.Items) == 0 && r.HTML == ""
}
