package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// MaxBodyBytes caps how much of a response body is read.
const MaxBodyBytes = 4 << 20

// Option configures an adapter.
type Option func(*options)

type options struct {
	client    *http.Client
	userAgent string
	pageSize  int
}

func defaultOptions() options {
	return options{
		client:    http.DefaultClient,
		userAgent: domain.DefaultSourceSettings("").UserAgent,
		pageSize:  domain.DefaultPageSize,
	}
}

// WithHTTPClient sets the HTTP client. The client's own Timeout should be
// zero; the descriptor timeout is applied per request.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

// WithUserAgent sets the identifying User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithPageSize sets the REST per_page cap.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// fetcher performs one GET for a source.
type fetcher struct {
	desc domain.SourceDescriptor
	opts options
}

func newFetcher(desc domain.SourceDescriptor, opts []Option) fetcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if desc.Timeout <= 0 {
		desc.Timeout = domain.DefaultTimeout
	}
	return fetcher{desc: desc, opts: o}
}

// get fetches target and returns the body and the final URL.
func (f fetcher) get(ctx context.Context, target, accept string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.desc.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", &domain.ErrorReport{
			Kind:    domain.ErrorNetwork,
			Message: fmt.Sprintf("invalid endpoint %q", target),
			TierID:  f.desc.ID,
			Err:     err,
		}
	}
	req.Header.Set("User-Agent", f.opts.userAgent)
	req.Header.Set("Accept", accept)
	injectTraceparent(ctx, req)

	resp, err := f.opts.client.Do(req)
	if err != nil {
		return nil, "", classify(f.desc, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, "", classify(f.desc, target, &StatusError{StatusCode: resp.StatusCode, URL: target})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, "", classify(f.desc, target, fmt.Errorf("reading body: %w", err))
	}

	final := target
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	return body, final, nil
}
