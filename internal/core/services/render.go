package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// Separator is placed between rendered summaries.
const Separator = "\n\n---\n\n"

// Render turns an outcome into the text returned to the caller.
// It is deterministic and has no side effects.
func Render(outcome domain.PipelineOutcome, query domain.LookupQuery) string {
	switch outcome.Status {
	case domain.OutcomeFound:
		return renderFound(outcome, query)
	case domain.OutcomeFailed:
		return renderFailed(outcome.Err, query)
	default:
		return renderEmpty(query)
	}
}

func renderFound(outcome domain.PipelineOutcome, query domain.LookupQuery) string {
	var b strings.Builder

	n := len(outcome.Summaries)
	noun := "results"
	if n == 1 {
		noun = "result"
	}
	fmt.Fprintf(&b, "Found %d %s for \"%s\" in the %s.", n, noun, query.Term, scope(query))

	if outcome.Fallback {
		b.WriteString("\n\n")
		b.WriteString(fallbackNote(outcome, query))
	}
	b.WriteString("\n\n")

	sections := make([]string, 0, n)
	for i, s := range outcome.Summaries {
		sections = append(sections, renderSummary(i+1, s))
	}
	b.WriteString(strings.Join(sections, Separator))

	return b.String()
}

func renderSummary(n int, s domain.DocumentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %d. %s", n, s.Title)

	body := s.Excerpt
	if body == "" {
		body = s.BodyPreview
	}
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	if !s.Reference.IsEmpty() {
		renderReference(&b, s.Reference)
	}

	fmt.Fprintf(&b, "\n\nLink: %s", s.Link)
	return b.String()
}

func renderReference(b *strings.Builder, ref *domain.ReferenceDetails) {
	if ref.Syntax != "" {
		fmt.Fprintf(b, "\n\n### Syntax\n\n```php\n%s\n```", ref.Syntax)
	}

	if len(ref.Parameters) > 0 {
		b.WriteString("\n\n### Parameters\n")
		for _, p := range ref.Parameters {
			b.WriteString("\n- `")
			b.WriteString(p.Name)
			b.WriteString("`")
			if p.Type != "" {
				fmt.Fprintf(b, " (%s)", p.Type)
			}
			if p.Description != "" {
				fmt.Fprintf(b, ": %s", p.Description)
			}
		}
	}

	if ref.Returns != "" {
		fmt.Fprintf(b, "\n\n### Returns\n\n%s", ref.Returns)
	}
}

func fallbackNote(outcome domain.PipelineOutcome, query domain.LookupQuery) string {
	if query.Kind == domain.FunctionLookup {
		return fmt.Sprintf("No %s reference page is named \"%s\". Showing related results instead.",
			singular(query.ContentType), query.Term)
	}
	source := outcome.SourceLabel
	if source == "" {
		source = "a secondary source"
	}
	return fmt.Sprintf("The primary source had nothing for this query. Results are from %s.", source)
}

func renderEmpty(query domain.LookupQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "No documentation found for \"%s\" in the %s.\n\n", query.Term, scope(query))
	b.WriteString("Suggestions:\n")
	fmt.Fprintf(&b, "- Check the spelling of \"%s\".\n", query.Term)
	b.WriteString("- Try a broader or related keyword.\n")

	switch query.Kind {
	case domain.VipSearch:
		if query.Section != "" && query.Section != domain.SectionAll {
			b.WriteString("- Search all sections instead of \"" + string(query.Section) + "\".\n")
		}
		b.WriteString("- Browse https://docs.wpvip.com/ directly.")
	case domain.FunctionLookup:
		b.WriteString("- Use wp_search_docs to search by keyword instead of exact name.\n")
		b.WriteString("- Try another reference family (functions, hooks or classes).\n")
		b.WriteString("- Browse https://developer.wordpress.org/reference/ directly.")
	default:
		b.WriteString("- Try another content type (posts, functions, hooks or classes).\n")
		b.WriteString("- Browse https://developer.wordpress.org/ directly.")
	}

	return b.String()
}

func renderFailed(report *domain.ErrorReport, query domain.LookupQuery) string {
	message := "an unexpected error occurred"
	if report != nil && report.Message != "" {
		message = report.Message
	}
	return fmt.Sprintf(
		"Sorry, the documentation lookup for \"%s\" could not be completed: %s.\n\n"+
			"The documentation site may be temporarily unavailable. Please try again in a moment.",
		query.Term, message)
}

func scope(query domain.LookupQuery) string {
	switch {
	case query.Kind == domain.VipSearch:
		return "WordPress VIP documentation"
	case query.ContentType.IsReference():
		return "WordPress code reference"
	default:
		return "WordPress developer documentation"
	}
}

func singular(c domain.ContentType) string {
	switch c {
	case domain.ContentHooks:
		return "hook"
	case domain.ContentClasses:
		return "class"
	default:
		return "function"
	}
}
