package sources

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// Endpoint template placeholders.
const (
	// PlaceholderQuery is the term, query-escaped.
	PlaceholderQuery = "{query}"

	// PlaceholderName is the lowercased term, path-escaped.
	PlaceholderName = "{name}"

	// PlaceholderFamily is the reference family: functions, hooks or classes.
	PlaceholderFamily = "{family}"

	// PlaceholderPostType is the REST post type of the content type.
	PlaceholderPostType = "{post_type}"
)

// PostType returns the WordPress REST post type for a content type.
func PostType(c domain.ContentType) string {
	switch c {
	case domain.ContentFunctions:
		return "wp-parser-function"
	case domain.ContentHooks:
		return "wp-parser-hook"
	case domain.ContentClasses:
		return "wp-parser-class"
	default:
		return "posts"
	}
}

// Expand fills the placeholders of an endpoint template from a query.
func Expand(template string, q domain.LookupQuery) string {
	family := q.ContentType
	if !family.IsReference() {
		family = domain.ContentFunctions
	}
	return strings.NewReplacer(
		PlaceholderQuery, url.QueryEscape(q.Term),
		PlaceholderName, url.PathEscape(strings.ToLower(q.Term)),
		PlaceholderFamily, string(family),
		PlaceholderPostType, PostType(q.ContentType),
	).Replace(template)
}
