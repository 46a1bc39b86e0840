package domain

import (
	"fmt"
	"time"
)

// Default endpoints and limits.
const (
	DefaultDocsAPIBase       = "https://developer.wordpress.org/wp-json/wp/v2"
	DefaultReferenceBase     = "https://developer.wordpress.org/reference"
	DefaultVIPAPIBase        = "https://docs.wpvip.com/wp-json/wp/v2"
	DefaultVIPSearchURL      = "https://docs.wpvip.com/?s={query}"
	DefaultTimeout           = 10 * time.Second
	DefaultVIPProbeTimeout   = 5 * time.Second
	DefaultPageSize          = 5
	DefaultUserAgentTemplate = "wpdocs/%s (+https://github.com/custodia-labs/wpdocs)"
)

// SourceSettings configures the remote sources.
type SourceSettings struct {
	// DocsAPIBase is the developer.wordpress.org REST base (…/wp-json/wp/v2).
	DocsAPIBase string

	// ReferenceBase is the code reference root; pages live at
	// <ReferenceBase>/<functions|hooks|classes>/<name>/.
	ReferenceBase string

	// VIPAPIBase is the VIP documentation REST base.
	VIPAPIBase string

	// VIPSearchURL is the VIP search page template with a {query} placeholder.
	VIPSearchURL string

	// Timeout applies to general searches and scrapes.
	Timeout time.Duration

	// VIPProbeTimeout applies to the VIP REST probe.
	VIPProbeTimeout time.Duration

	// UserAgent identifies the client to remote sources.
	UserAgent string
}

// DefaultSourceSettings returns the default source settings.
func DefaultSourceSettings(version string) SourceSettings {
	if version == "" {
		version = "dev"
	}
	return SourceSettings{
		DocsAPIBase:     DefaultDocsAPIBase,
		ReferenceBase:   DefaultReferenceBase,
		VIPAPIBase:      DefaultVIPAPIBase,
		VIPSearchURL:    DefaultVIPSearchURL,
		Timeout:         DefaultTimeout,
		VIPProbeTimeout: DefaultVIPProbeTimeout,
		UserAgent:       fmt.Sprintf(DefaultUserAgentTemplate, version),
	}
}
