package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/wpdocs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/services"
	"github.com/custodia-labs/wpdocs/internal/extractors"
	"github.com/custodia-labs/wpdocs/internal/sources"
)

// Source IDs, as they appear in logs and fallback notes.
const (
	SourcePostsAPI      = "wporg-posts-api"
	SourceFunctionsAPI  = "wporg-functions-api"
	SourceHooksAPI      = "wporg-hooks-api"
	SourceClassesAPI    = "wporg-classes-api"
	SourceReferencePage = "wporg-reference-page"
	SourceReferenceAPI  = "wporg-reference-api"
	SourceVIPAPI        = "vip-posts-api"
	SourceVIPSearchPage = "vip-search-page"
)

// buildServices wires the config store, sources, pipeline and dispatcher.
func buildServices(dir string) error {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	settings := services.NewSettingsService(store, version)
	pipeline := services.NewPipeline(
		services.DefaultTierTable(NewSourceSet(settings.Get(), &http.Client{})),
		extractors.New(),
	)

	SetServices(services.NewDispatcher(pipeline), settings, store.Path())
	return nil
}

// NewSourceSet creates one adapter per remote endpoint. All adapters share
// client, which must not set its own Timeout.
func NewSourceSet(cfg domain.SourceSettings, client *http.Client) services.SourceSet {
	opts := []sources.Option{
		sources.WithHTTPClient(client),
		sources.WithUserAgent(cfg.UserAgent),
	}

	api := func(id, label, endpoint string, timeout time.Duration) *sources.JSONAdapter {
		return sources.NewJSONAdapter(domain.SourceDescriptor{
			ID:               id,
			Label:            label,
			EndpointTemplate: endpoint,
			Timeout:          timeout,
		}, opts...)
	}
	page := func(id, label, endpoint string) *sources.HTMLAdapter {
		return sources.NewHTMLAdapter(domain.SourceDescriptor{
			ID:               id,
			Label:            label,
			EndpointTemplate: endpoint,
			Timeout:          cfg.Timeout,
		}, opts...)
	}

	return services.SourceSet{
		PostsAPI: api(SourcePostsAPI, "the developer documentation search",
			cfg.DocsAPIBase+"/posts", cfg.Timeout),
		FunctionsAPI: api(SourceFunctionsAPI, "the function reference search",
			cfg.DocsAPIBase+"/wp-parser-function", cfg.Timeout),
		HooksAPI: api(SourceHooksAPI, "the hook reference search",
			cfg.DocsAPIBase+"/wp-parser-hook", cfg.Timeout),
		ClassesAPI: api(SourceClassesAPI, "the class reference search",
			cfg.DocsAPIBase+"/wp-parser-class", cfg.Timeout),
		VIPAPI: api(SourceVIPAPI, "the VIP documentation search",
			cfg.VIPAPIBase+"/posts", cfg.VIPProbeTimeout),
		VIPSearchPage: page(SourceVIPSearchPage, "the VIP search page", cfg.VIPSearchURL),
		ReferencePage: page(SourceReferencePage, "the code reference page",
			cfg.ReferenceBase+"/"+sources.PlaceholderFamily+"/"+sources.PlaceholderName+"/"),
		ReferenceAPI: api(SourceReferenceAPI, "the code reference search",
			cfg.DocsAPIBase+"/"+sources.PlaceholderPostType, cfg.Timeout),
	}
}
