package extractors

import (
	"html"
	"net/url"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for tag removal.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag  = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	svgTag       = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockTags    = regexp.MustCompile(
		`(?i)</?(p|div|br|hr|h[1-6]|li|ul|ol|dl|dt|dd|tr|td|th|table|blockquote|pre|section|article|header|footer|main|nav|aside|figure)\b[^>]*>`)
	allTags = regexp.MustCompile(`<[^>]*>`)
)

const ellipsis = "..."

// angleBrackets removes markup characters left over after entity decoding,
// e.g. "&lt;b&gt;" becomes "b".
var angleBrackets = strings.NewReplacer("<", "", ">", "")

// PlainText strips markup from s and returns a single line of text.
func PlainText(s string) string {
	if s == "" {
		return ""
	}

	s = scriptTag.ReplaceAllString(s, " ")
	s = styleTag.ReplaceAllString(s, " ")
	s = noscriptTag.ReplaceAllString(s, " ")
	s = svgTag.ReplaceAllString(s, " ")
	s = htmlComments.ReplaceAllString(s, " ")

	// Block boundaries become spaces so adjacent paragraphs don't run together.
	s = blockTags.ReplaceAllString(s, " ")
	s = allTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = angleBrackets.Replace(s)

	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most limit characters, marking the cut with "...".
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	cut := strings.TrimRight(string(runes[:limit-len(ellipsis)]), " ")
	return cut + ellipsis
}

// Preview strips markup and truncates to the summary preview length.
func Preview(s string, limit int) string {
	return Truncate(PlainText(s), limit)
}

// parseBase returns the origin URL of raw, or nil if raw is not an absolute
// http(s) URL.
func parseBase(raw string) *url.URL {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return u
}

func origin(base *url.URL) string {
	return base.Scheme + "://" + base.Host
}

// AcceptLink applies the scraped-link allow-list. Same-origin absolute URLs
// pass through unchanged; root-relative paths are rewritten against the
// origin of base. Everything else is rejected.
func AcceptLink(href string, base *url.URL) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		if base == nil {
			return "", false
		}
		return origin(base) + href, true
	}

	u, err := url.Parse(href)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	if base != nil && !strings.EqualFold(u.Host, base.Host) {
		return "", false
	}
	return href, true
}

// resolveLink makes a REST link absolute. Relative links are resolved
// against base; the result must be an absolute http(s) URL.
func resolveLink(href string, base *url.URL) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := href
	if !u.IsAbs() {
		if base == nil {
			return "", false
		}
		u = base.ResolveReference(u)
		resolved = u.String()
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return resolved, true
}
