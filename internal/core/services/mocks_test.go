package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// mockAdapter implements driven.SourceAdapter for testing.
type mockAdapter struct {
	desc  domain.SourceDescriptor
	raw   *domain.RawSourceResult
	err   error
	calls atomic.Int32
	last  domain.LookupQuery
}

func newMockAdapter(id string, kind domain.AdapterKind) *mockAdapter {
	return &mockAdapter{desc: domain.SourceDescriptor{ID: id, Kind: kind}}
}

func (m *mockAdapter) Descriptor() domain.SourceDescriptor {
	return m.desc
}

func (m *mockAdapter) Fetch(_ context.Context, q domain.LookupQuery) (*domain.RawSourceResult, error) {
	m.calls.Add(1)
	m.last = q
	if m.err != nil {
		return nil, m.err
	}
	if m.raw == nil {
		return &domain.RawSourceResult{Kind: m.desc.Kind}, nil
	}
	return m.raw, nil
}

func (m *mockAdapter) withItems(n int) *mockAdapter {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"title":   map[string]any{"rendered": fmt.Sprintf("Item %d", i+1)},
			"excerpt": map[string]any{"rendered": fmt.Sprintf("<p>Excerpt %d</p>", i+1)},
			"link":    fmt.Sprintf("https://developer.wordpress.org/item-%d/", i+1),
		}
	}
	m.raw = &domain.RawSourceResult{
		Kind:        domain.AdapterJSONAPI,
		Items:       items,
		DocumentURL: "https://developer.wordpress.org/wp-json/wp/v2/posts",
	}
	return m
}

func (m *mockAdapter) withHTML(html, documentURL string) *mockAdapter {
	m.raw = &domain.RawSourceResult{Kind: domain.AdapterHTMLScrape, HTML: html, DocumentURL: documentURL}
	return m
}

func (m *mockAdapter) failing(kind domain.ErrorKind, message string) *mockAdapter {
	m.err = &domain.ErrorReport{Kind: kind, Message: message, TierID: m.desc.ID}
	return m
}

// mockResolver implements driving.Resolver for testing.
type mockResolver struct {
	outcome domain.PipelineOutcome
	calls   int
	last    domain.LookupQuery
}

func (r *mockResolver) Resolve(_ context.Context, q domain.LookupQuery) domain.PipelineOutcome {
	r.calls++
	r.last = q
	return r.outcome
}
