package extractors

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// FromHTMLDocument extracts up to MaxCandidates summaries from markup.
// Candidates without a title or an accepted link are dropped.
func (e *Extractor) FromHTMLDocument(
	doc, documentURL string,
	name domain.ExtractionProfile,
) []domain.DocumentSummary {
	p, ok := profiles[name]
	if !ok {
		logger.Warn("Unknown extraction profile %q", name)
		return nil
	}

	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		logger.Warn("Degraded: unparseable document from %s: %v", documentURL, err)
		return nil
	}

	base := parseBase(documentURL)

	nodes := selectCandidates(page.Selection, p.candidates)
	if nodes == nil {
		logger.Debug("Degraded: no candidate selector matched %s", documentURL)
		return nil
	}
	if nodes.Length() > MaxCandidates {
		nodes = nodes.Slice(0, MaxCandidates)
	}

	var pageLink string
	if p.selfLink {
		pageLink = canonicalLink(page, documentURL, base)
	}

	seen := make(map[string]bool)
	summaries := make([]domain.DocumentSummary, 0, nodes.Length())

	nodes.Each(func(_ int, node *goquery.Selection) {
		title := Truncate(firstText(node, p.titles), domain.PreviewLength)
		link := firstLink(node, p.links, base)
		if link == "" {
			link = pageLink
		}
		if title == "" || link == "" || seen[link] {
			return
		}
		seen[link] = true

		summary := domain.DocumentSummary{
			Title:       title,
			Excerpt:     Truncate(firstText(node, p.excerpts), domain.PreviewLength),
			Link:        link,
			BodyPreview: bodyPreview(node),
		}
		if p.reference {
			if details := extractReference(node, page.Selection); !details.IsEmpty() {
				summary.Reference = details
			}
		}
		summaries = append(summaries, summary)
	})

	if len(summaries) < nodes.Length() {
		logger.Debug("Degraded: kept %d of %d candidates from %s", len(summaries), nodes.Length(), documentURL)
	}

	return summaries
}

// selectCandidates returns the matches of the first selector with at least one match.
func selectCandidates(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// firstText returns the plain text of the first selector with non-empty text.
func firstText(node *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		var text string
		node.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text = selectionText(s)
			return text == ""
		})
		if text != "" {
			return text
		}
	}
	return ""
}

// firstLink returns the first accepted href, checking the node itself when it is an anchor.
func firstLink(node *goquery.Selection, selectors []string, base *url.URL) string {
	if node.Is("a[href]") {
		if link, ok := AcceptLink(node.AttrOr("href", ""), base); ok {
			return link
		}
	}
	for _, sel := range selectors {
		var link string
		node.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if accepted, ok := AcceptLink(s.AttrOr("href", ""), base); ok {
				link = accepted
				return false
			}
			return true
		})
		if link != "" {
			return link
		}
	}
	return ""
}

// canonicalLink returns the page's canonical URL if it passes the allow-list,
// otherwise the URL the page was fetched from.
func canonicalLink(page *goquery.Document, documentURL string, base *url.URL) string {
	if href, ok := page.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		if link, accepted := AcceptLink(href, base); accepted {
			return link
		}
	}
	if base == nil {
		return ""
	}
	return documentURL
}

// selectionText renders a selection through the tag-removal pass so block
// boundaries become spaces.
func selectionText(s *goquery.Selection) string {
	raw, err := goquery.OuterHtml(s)
	if err != nil {
		return PlainText(s.Text())
	}
	return PlainText(raw)
}

func bodyPreview(node *goquery.Selection) string {
	return Truncate(selectionText(node), domain.PreviewLength)
}

// extractReference reads the optional code reference sections, preferring
// the candidate node and falling back to the whole page.
func extractReference(node, page *goquery.Selection) *domain.ReferenceDetails {
	details := &domain.ReferenceDetails{
		Syntax:     codeText(node, page, syntaxSelectors),
		Parameters: parameters(node, page),
		Returns:    firstText(node, returnSelectors),
	}
	if details.Returns == "" {
		details.Returns = firstText(page, returnSelectors)
	}
	return details
}

// codeText returns the text of a code sample. Entities are decoded and tags
// dropped, but operators such as => and -> are kept.
func codeText(node, page *goquery.Selection, selectors []string) string {
	for _, root := range []*goquery.Selection{node, page} {
		for _, sel := range selectors {
			found := root.Find(sel).First()
			if found.Length() == 0 {
				continue
			}
			if text := strings.TrimSpace(found.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func parameters(node, page *goquery.Selection) []domain.Parameter {
	terms := selectCandidates(node, parameterSelectors)
	if terms == nil {
		terms = selectCandidates(page, parameterSelectors)
	}
	if terms == nil {
		return nil
	}

	var params []domain.Parameter
	terms.Each(func(_ int, dt *goquery.Selection) {
		name := selectionText(dt)
		if name == "" {
			return
		}
		dd := dt.NextFiltered("dd")
		param := domain.Parameter{
			Name: name,
			Type: selectionText(dd.Find(".type").First()),
		}
		if desc := dd.Find(".description").First(); desc.Length() > 0 {
			param.Description = selectionText(desc)
		} else {
			param.Description = selectionText(dd)
		}
		params = append(params, param)
	})
	return params
}
