package extractors

import "github.com/custodia-labs/wpdocs/internal/core/domain"

// MaxCandidates bounds the number of candidate nodes read from one page.
const MaxCandidates = 5

// profile is an ordered set of selectors for one kind of page.
// Within each list the first selector that matches wins.
type profile struct {
	// candidates select the result nodes.
	candidates []string

	// titles are tried inside each candidate.
	titles []string

	// links select anchors inside each candidate.
	links []string

	// excerpts are tried inside each candidate.
	excerpts []string

	// selfLink uses the page's canonical URL when no anchor is accepted.
	selfLink bool

	// reference enables syntax, parameter and return extraction.
	reference bool
}

var profiles = map[domain.ExtractionProfile]profile{
	domain.ProfileVIPSearch: {
		candidates: []string{
			"article.search-result",
			".search-results article",
			"main article",
			"article",
			"li.search-result",
			".search-result",
		},
		titles: []string{
			".entry-title",
			"h2",
			"h3",
			"h1",
			"a",
		},
		links: []string{
			".entry-title a[href]",
			"h2 a[href]",
			"h3 a[href]",
			"a[href]",
		},
		excerpts: []string{
			".entry-summary",
			".entry-excerpt",
			".excerpt",
			"p",
		},
	},
	domain.ProfileFunctionReference: {
		candidates: []string{
			`article[class*="wp-parser-"]`,
			"main article",
			"article",
			"main",
			"#content",
			"body",
		},
		titles: []string{
			".wp-parser-title",
			"h1",
			"h2",
		},
		excerpts: []string{
			"section.summary",
			".summary",
			".description p",
			"section.description",
			"p",
		},
		selfLink:  true,
		reference: true,
	},
}

// Reference page selectors.
var (
	syntaxSelectors = []string{
		".wp-parser-signature",
		".signature",
		"pre code",
		"pre",
	}
	parameterSelectors = []string{
		"section.parameters dt",
		".parameters dt",
	}
	returnSelectors = []string{
		"section.return p",
		".return p",
		"section.return",
		".return",
	}
)
