package services

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driven"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driving"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Resolver = (*Pipeline)(nil)

// Tier is one step of a resolution pipeline.
type Tier struct {
	Adapter driven.SourceAdapter

	// Profile selects the HTML extraction profile. Unused for JSON sources.
	Profile domain.ExtractionProfile

	// FallbackOn lists the error kinds that advance to the next tier.
	// Nil means every error kind advances.
	FallbackOn []domain.ErrorKind
}

// fallsThrough reports whether an error of the given kind advances.
func (t Tier) fallsThrough(kind domain.ErrorKind) bool {
	return t.FallbackOn == nil || slices.Contains(t.FallbackOn, kind)
}

// TierTable declares the ordered tiers of every lookup kind.
type TierTable map[domain.LookupKind][]Tier

// SourceSet holds one adapter per remote endpoint.
type SourceSet struct {
	PostsAPI      driven.SourceAdapter
	FunctionsAPI  driven.SourceAdapter
	HooksAPI      driven.SourceAdapter
	ClassesAPI    driven.SourceAdapter
	VIPAPI        driven.SourceAdapter
	VIPSearchPage driven.SourceAdapter
	ReferencePage driven.SourceAdapter

	// ReferenceAPI searches the family named by the query's content type.
	ReferenceAPI driven.SourceAdapter
}

// DefaultTierTable returns the tier orderings for every lookup kind.
// Exact reference lookups fall through to keyword search only when the
// reference page does not exist.
func DefaultTierTable(s SourceSet) TierTable {
	return TierTable{
		domain.PostsSearch:     {{Adapter: s.PostsAPI}},
		domain.FunctionsSearch: {{Adapter: s.FunctionsAPI}},
		domain.HooksSearch:     {{Adapter: s.HooksAPI}},
		domain.ClassesSearch:   {{Adapter: s.ClassesAPI}},
		domain.VipSearch: {
			{Adapter: s.VIPAPI},
			{Adapter: s.VIPSearchPage, Profile: domain.ProfileVIPSearch},
		},
		domain.FunctionLookup: {
			{
				Adapter:    s.ReferencePage,
				Profile:    domain.ProfileFunctionReference,
				FallbackOn: []domain.ErrorKind{domain.ErrorNotFound},
			},
			{Adapter: s.ReferenceAPI},
		},
	}
}

// Pipeline resolves lookup queries by trying tiers in order.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	tiers     TierTable
	extractor driven.ContentExtractor
}

// NewPipeline creates a pipeline. Tiers without an adapter are ignored.
func NewPipeline(tiers TierTable, extractor driven.ContentExtractor) *Pipeline {
	compact := make(TierTable, len(tiers))
	for kind, list := range tiers {
		for _, tier := range list {
			if tier.Adapter != nil {
				compact[kind] = append(compact[kind], tier)
			}
		}
	}
	return &Pipeline{tiers: compact, extractor: extractor}
}

// Resolve runs the tiers of the query's kind until one yields summaries.
// It always returns an outcome; adapter and extractor failures are folded
// into it.
func (p *Pipeline) Resolve(ctx context.Context, query domain.LookupQuery) domain.PipelineOutcome {
	log := logger.FromContext(ctx)

	tiers := p.tiers[query.Kind]
	if len(tiers) == 0 {
		log.Warn("No tiers declared for %s", query.Kind)
		return domain.Failed(&domain.ErrorReport{
			Kind:    domain.ErrorValidation,
			Message: fmt.Sprintf("no documentation sources are configured for %s", query.Kind),
			Err:     domain.ErrUnknownKind,
		})
	}

	var lastErr *domain.ErrorReport
	for i, tier := range tiers {
		desc := tier.Adapter.Descriptor()
		log.Debug("Tier %d/%d (%s) for %s %q", i+1, len(tiers), desc.ID, query.Kind, query.Term)

		raw, err := tier.Adapter.Fetch(ctx, query)
		if err != nil {
			report := tierError(desc, err)
			lastErr = report
			log.Warn("Tier %s failed (%s): %s", desc.ID, report.Kind, report.Message)

			if i == len(tiers)-1 || !tier.fallsThrough(report.Kind) {
				return domain.Failed(report)
			}
			continue
		}

		summaries := filterSection(p.extract(tier, raw), query.Section)
		if len(summaries) > 0 {
			log.Info("Tier %s returned %d summaries", desc.ID, len(summaries))
			outcome := domain.Found(summaries, desc.ID, i > 0)
			outcome.SourceLabel = desc.Label
			return outcome
		}
		log.Debug("Tier %s returned no summaries", desc.ID)
	}

	return domain.Empty(lastErr)
}

func (p *Pipeline) extract(tier Tier, raw *domain.RawSourceResult) []domain.DocumentSummary {
	if raw.Empty() {
		return nil
	}
	switch raw.Kind {
	case domain.AdapterHTMLScrape:
		return p.extractor.FromHTMLDocument(raw.HTML, raw.DocumentURL, tier.Profile)
	default:
		return p.extractor.FromJSONItems(raw.Items, raw.DocumentURL)
	}
}

// tierError copies the adapter's report and stamps the tier ID.
func tierError(desc domain.SourceDescriptor, err error) *domain.ErrorReport {
	report := *domain.AsErrorReport(err)
	if report.TierID == "" {
		report.TierID = desc.ID
	}
	return &report
}

// filterSection keeps summaries whose link path lies in the section.
func filterSection(summaries []domain.DocumentSummary, section domain.Section) []domain.DocumentSummary {
	if section == "" || section == domain.SectionAll {
		return summaries
	}

	marker := "/" + string(section) + "/"
	kept := make([]domain.DocumentSummary, 0, len(summaries))
	for _, s := range summaries {
		u, err := url.Parse(s.Link)
		if err != nil {
			continue
		}
		if strings.Contains(u.Path+"/", marker) {
			kept = append(kept, s)
		}
	}
	return kept
}
