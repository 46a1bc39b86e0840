package domain

import "time"

// AdapterKind identifies how a source is fetched and extracted.
type AdapterKind string

const (
	// AdapterJSONAPI is a REST search endpoint returning a JSON array.
	AdapterJSONAPI AdapterKind = "json_api"

	// AdapterHTMLScrape is an HTML search or reference page.
	AdapterHTMLScrape AdapterKind = "html_scrape"
)

// SourceDescriptor describes one remote endpoint. It is static for the life
// of the adapter that owns it.
type SourceDescriptor struct {
	// ID is a stable identifier, e.g. "wporg-functions-api".
	ID string

	// Label names the source for end users, e.g. "the VIP search page".
	Label string

	// Kind selects the fetch and extraction strategy.
	Kind AdapterKind

	// EndpointTemplate is the endpoint URL. HTML templates contain a {query}
	// or {name} placeholder for the term.
	EndpointTemplate string

	// Timeout bounds a single fetch.
	Timeout time.Duration
}

// ExtractionProfile names the selector profile used for HTML sources.
type ExtractionProfile string

// Available extraction profiles.
const (
	// ProfileNone is used by JSON sources.
	ProfileNone ExtractionProfile = ""

	// ProfileVIPSearch extracts results from a VIP documentation search page.
	ProfileVIPSearch ExtractionProfile = "vip-search"

	// ProfileFunctionReference extracts a code reference page.
	ProfileFunctionReference ExtractionProfile = "function-reference"
)
