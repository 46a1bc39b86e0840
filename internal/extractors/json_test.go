package extractors

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItems(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items
}

func TestFromJSONItems(t *testing.T) {
	items := decodeItems(t, `[
		{
			"title": {"rendered": "Plugin &amp; Theme Hooks"},
			"excerpt": {"rendered": "<p>Hooks let you <em>change</em> behaviour.</p>"},
			"content": {"rendered": "<h2>Actions</h2><p>Actions run at points.</p>"},
			"link": "https://developer.wordpress.org/plugins/hooks/"
		},
		{
			"excerpt": {"rendered": ""},
			"content": {"rendered": ""},
			"link": "https://developer.wordpress.org/plugins/"
		}
	]`)

	summaries := New().FromJSONItems(items, "https://developer.wordpress.org/wp-json/wp/v2/posts")
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, "Plugin & Theme Hooks", first.Title)
	assert.Equal(t, "Hooks let you change behaviour.", first.Excerpt)
	assert.Equal(t, "Actions Actions run at points.", first.BodyPreview)
	assert.Equal(t, "https://developer.wordpress.org/plugins/hooks/", first.Link)
	assert.Nil(t, first.Reference)

	second := summaries[1]
	assert.Equal(t, DefaultTitle, second.Title)
	assert.Equal(t, "", second.Excerpt)
	assert.Equal(t, "", second.BodyPreview)
}

func TestFromJSONItems_BodyFallsBackToExcerpt(t *testing.T) {
	items := decodeItems(t, `[{"title": {"rendered": "T"}, "excerpt": {"rendered": "<p>Short</p>"}, "link": "https://x.org/t"}]`)

	summaries := New().FromJSONItems(items, "")
	require.Len(t, summaries, 1)
	assert.Equal(t, "Short", summaries[0].BodyPreview)
}

func TestFromJSONItems_PlainStringFields(t *testing.T) {
	items := []map[string]any{{"title": "Direct", "excerpt": "plain", "link": "/docs/direct/"}}

	summaries := New().FromJSONItems(items, "https://docs.wpvip.com/wp-json/wp/v2/posts")
	require.Len(t, summaries, 1)
	assert.Equal(t, "Direct", summaries[0].Title)
	assert.Equal(t, "https://docs.wpvip.com/docs/direct/", summaries[0].Link)
}

func TestFromJSONItems_PreviewBound(t *testing.T) {
	long := strings.Repeat("<p>lorem &lt;ipsum&gt; dolor</p>", 40)
	items := []map[string]any{{
		"title":   map[string]any{"rendered": "Long"},
		"excerpt": map[string]any{"rendered": long},
		"content": map[string]any{"rendered": long},
		"link":    "https://x.org/long",
	}}

	summaries := New().FromJSONItems(items, "")
	require.Len(t, summaries, 1)
	for _, field := range []string{summaries[0].Excerpt, summaries[0].BodyPreview} {
		assert.LessOrEqual(t, utf8.RuneCountInString(field), 200)
		assert.NotContains(t, field, "<")
		assert.NotContains(t, field, ">")
	}
}

func TestFromJSONItems_Empty(t *testing.T) {
	assert.Empty(t, New().FromJSONItems(nil, ""))
	assert.Empty(t, New().FromJSONItems([]map[string]any{nil}, ""))
}

func TestFromJSONItems_DropsItemsWithoutAbsoluteLink(t *testing.T) {
	items := []map[string]any{
		{"title": map[string]any{"rendered": "No link"}},
		{"title": map[string]any{"rendered": "Numeric link"}, "link": 42},
		{"title": map[string]any{"rendered": "Blank link"}, "link": "   "},
		{"title": map[string]any{"rendered": "Mail"}, "link": "mailto:docs@example.org"},
		{"title": map[string]any{"rendered": "Kept"}, "link": "https://developer.wordpress.org/kept/"},
	}

	summaries := New().FromJSONItems(items, "https://developer.wordpress.org/wp-json/wp/v2/posts?search=x")

	require.Len(t, summaries, 1)
	assert.Equal(t, "Kept", summaries[0].Title)
	assert.Equal(t, "https://developer.wordpress.org/kept/", summaries[0].Link)
}

func TestFromJSONItems_RelativeLinks(t *testing.T) {
	items := []map[string]any{
		{"title": "Root relative", "link": "/plugins/hooks/"},
		{"title": "Path relative", "link": "hooks/actions/"},
	}

	t.Run("resolved against the source", func(t *testing.T) {
		summaries := New().FromJSONItems(items, "https://developer.wordpress.org/wp-json/wp/v2/posts?search=x")
		require.Len(t, summaries, 2)
		assert.Equal(t, "https://developer.wordpress.org/plugins/hooks/", summaries[0].Link)
		assert.Equal(t, "https://developer.wordpress.org/wp-json/wp/v2/hooks/actions/", summaries[1].Link)
	})

	t.Run("dropped without a base", func(t *testing.T) {
		assert.Empty(t, New().FromJSONItems(items, ""))
		assert.Empty(t, New().FromJSONItems(items, "not a url"))
	})
}
