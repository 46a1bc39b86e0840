package extractors

import (
	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// DefaultTitle is used for items without a rendered title.
const DefaultTitle = "Untitled"

// FromJSONItems converts WordPress REST items into summaries.
// Rendered fields are stripped of markup; the body preview falls back to the
// excerpt and is empty, never missing, when both are empty. Items without a
// link that resolves to an absolute URL are dropped.
func (e *Extractor) FromJSONItems(items []map[string]any, baseURL string) []domain.DocumentSummary {
	base := parseBase(baseURL)
	summaries := make([]domain.DocumentSummary, 0, len(items))

	for _, item := range items {
		if item == nil {
			continue
		}

		raw, _ := item["link"].(string)
		link, ok := resolveLink(raw, base)
		if !ok {
			logger.Debug("Degraded: dropping REST item with link %q", raw)
			continue
		}

		title := PlainText(rendered(item, "title"))
		if title == "" {
			title = DefaultTitle
		}

		excerpt := Preview(rendered(item, "excerpt"), domain.PreviewLength)
		body := Preview(rendered(item, "content"), domain.PreviewLength)
		if body == "" {
			body = excerpt
		}

		summaries = append(summaries, domain.DocumentSummary{
			Title:       Truncate(title, domain.PreviewLength),
			Excerpt:     excerpt,
			Link:        link,
			BodyPreview: body,
		})
	}

	return summaries
}

// rendered reads item[key].rendered, accepting a plain string as well.
func rendered(item map[string]any, key string) string {
	switch v := item[key].(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["rendered"].(string); ok {
			return s
		}
	}
	return ""
}
