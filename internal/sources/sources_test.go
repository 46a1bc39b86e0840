package sources

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

func mustQuery(t *testing.T, kind domain.LookupKind, term string, contentType domain.ContentType) domain.LookupQuery {
	t.Helper()
	q, err := domain.NewLookupQuery(kind, term, "", contentType)
	require.NoError(t, err)
	return q
}

func requireReport(t *testing.T, err error) *domain.ErrorReport {
	t.Helper()
	var report *domain.ErrorReport
	require.True(t, errors.As(err, &report), "expected ErrorReport, got %T", err)
	return report
}

func TestExpand(t *testing.T) {
	t.Run("fills name and family for reference pages", func(t *testing.T) {
		q := mustQuery(t, domain.FunctionLookup, "WP_Query", domain.ContentClasses)
		got := Expand("https://developer.wordpress.org/reference/{family}/{name}/", q)
		assert.Equal(t, "https://developer.wordpress.org/reference/classes/wp_query/", got)
	})

	t.Run("query escapes search terms", func(t *testing.T) {
		q := mustQuery(t, domain.VipSearch, "cache & cdn", "")
		got := Expand("https://docs.wpvip.com/?s={query}", q)
		assert.Equal(t, "https://docs.wpvip.com/?s=cache+%26+cdn", got)
	})

	t.Run("maps post types", func(t *testing.T) {
		q := mustQuery(t, domain.FunctionLookup, "init", domain.ContentHooks)
		got := Expand("https://example.org/wp-json/wp/v2/{post_type}", q)
		assert.Equal(t, "https://example.org/wp-json/wp/v2/wp-parser-hook", got)
	})
}

func TestPostType(t *testing.T) {
	assert.Equal(t, "posts", PostType(domain.ContentPosts))
	assert.Equal(t, "wp-parser-function", PostType(domain.ContentFunctions))
	assert.Equal(t, "wp-parser-hook", PostType(domain.ContentHooks))
	assert.Equal(t, "wp-parser-class", PostType(domain.ContentClasses))
}

func TestJSONAdapter_Fetch(t *testing.T) {
	t.Run("sends search params and user agent", func(t *testing.T) {
		var got *http.Request
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Clone(context.Background())
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"title":{"rendered":"Hooks"},"link":"https://example.org/hooks/"}]`))
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{
			ID:               "posts-api",
			EndpointTemplate: srv.URL + "/wp-json/wp/v2/posts",
			Timeout:          time.Second,
		}, WithUserAgent("wpdocs-test/1.0"), WithHTTPClient(srv.Client()))

		raw, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "hooks", ""))
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, "/wp-json/wp/v2/posts", got.URL.Path)
		assert.Equal(t, "hooks", got.URL.Query().Get("search"))
		assert.Equal(t, "5", got.URL.Query().Get("per_page"))
		assert.Equal(t, RESTFields, got.URL.Query().Get("_fields"))
		assert.Equal(t, "wpdocs-test/1.0", got.Header.Get("User-Agent"))

		assert.Equal(t, domain.AdapterJSONAPI, raw.Kind)
		require.Len(t, raw.Items, 1)
		assert.Equal(t, "https://example.org/hooks/", raw.Items[0]["link"])
	})

	t.Run("page size option overrides per_page", func(t *testing.T) {
		perPage := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			perPage <- r.URL.Query().Get("per_page")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: srv.URL},
			WithPageSize(3), WithPageSize(0))
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "cron", ""))

		require.NoError(t, err)
		assert.Equal(t, "3", <-perPage)
	})

	t.Run("empty array yields zero items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: srv.URL})
		raw, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "nothing", ""))

		require.NoError(t, err)
		assert.True(t, raw.Empty())
	})

	t.Run("non-array body degrades to zero items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"code":"rest_no_route"}`))
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: srv.URL})
		raw, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "x", ""))

		require.NoError(t, err)
		assert.True(t, raw.Empty())
	})

	t.Run("404 is classified as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "reference-api", EndpointTemplate: srv.URL})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.FunctionsSearch, "x", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorNotFound, report.Kind)
		assert.Equal(t, "reference-api", report.TierID)
	})

	t.Run("500 is classified as network", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: srv.URL})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "x", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorNetwork, report.Kind)
		assert.Contains(t, report.Message, "HTTP 500")
	})

	t.Run("slow server is classified as timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{
			ID:               "vip-api",
			EndpointTemplate: srv.URL,
			Timeout:          50 * time.Millisecond,
		})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.VipSearch, "x", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorTimeout, report.Kind)
	})

	t.Run("unreachable host is classified as network", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		endpoint := srv.URL
		srv.Close()

		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: endpoint})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "x", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorNetwork, report.Kind)
	})

	t.Run("relative endpoint is rejected", func(t *testing.T) {
		adapter := NewJSONAdapter(domain.SourceDescriptor{ID: "posts-api", EndpointTemplate: "/wp-json"})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.PostsSearch, "x", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorNetwork, report.Kind)
	})
}

func TestHTMLAdapter_Fetch(t *testing.T) {
	t.Run("returns page and final url", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/reference/functions/get_post/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/reference/functions/get_post/v2/", http.StatusFound)
		})
		mux.HandleFunc("/reference/functions/get_post/v2/", func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.Header.Get("Accept"), "text/html")
			_, _ = w.Write([]byte("<html><body><h1>get_post()</h1></body></html>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		adapter := NewHTMLAdapter(domain.SourceDescriptor{
			ID:               "reference-page",
			EndpointTemplate: srv.URL + "/reference/{family}/{name}/",
		})
		raw, err := adapter.Fetch(context.Background(), mustQuery(t, domain.FunctionLookup, "get_post", ""))

		require.NoError(t, err)
		assert.Equal(t, domain.AdapterHTMLScrape, raw.Kind)
		assert.Contains(t, raw.HTML, "get_post()")
		assert.Equal(t, srv.URL+"/reference/functions/get_post/v2/", raw.DocumentURL)
		assert.Equal(t, domain.AdapterHTMLScrape, adapter.Descriptor().Kind)
	})

	t.Run("missing page is classified as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		adapter := NewHTMLAdapter(domain.SourceDescriptor{
			ID:               "reference-page",
			EndpointTemplate: srv.URL + "/reference/{family}/{name}/",
		})
		_, err := adapter.Fetch(context.Background(), mustQuery(t, domain.FunctionLookup, "nope", ""))

		report := requireReport(t, err)
		assert.Equal(t, domain.ErrorNotFound, report.Kind)
		assert.Contains(t, report.Message, "/reference/functions/nope/")
	})
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.False(t, IsTimeout(errors.New("boom")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&StatusError{StatusCode: http.StatusNotFound}))
	assert.True(t, IsNotFound(&StatusError{StatusCode: http.StatusGone}))
	assert.False(t, IsNotFound(&StatusError{StatusCode: http.StatusBadGateway}))
	assert.False(t, IsNotFound(errors.New("404")))
}
