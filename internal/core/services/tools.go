package services

import "github.com/custodia-labs/wpdocs/internal/core/domain"

// ToolSpecs describes every tool the dispatcher accepts.
func ToolSpecs() []domain.ToolSpec {
	return []domain.ToolSpec{
		{
			Name:        ToolSearchDocs,
			Description: "Search the WordPress developer documentation, or the function, hook and class reference, by keyword.",
			Arguments: []domain.ToolArgument{
				{Name: argQuery, Description: "Search term", Required: true},
				{
					Name:        argContentType,
					Description: "What to search: posts (default), functions, hooks or classes",
					Enum:        contentTypeNames(domain.AllContentTypes()),
				},
			},
		},
		{
			Name:        ToolVIPSearch,
			Description: "Search the WordPress VIP platform documentation.",
			Arguments: []domain.ToolArgument{
				{Name: argQuery, Description: "Search term", Required: true},
				{
					Name:        argSection,
					Description: "Restrict results to one area of the VIP documentation (default all)",
					Enum:        sectionNames(),
				},
			},
		},
		{
			Name:        ToolFunctionLookup,
			Description: "Look up a WordPress function, hook or class by exact name. Falls back to related results when no reference page exists.",
			Arguments: []domain.ToolArgument{
				{Name: argFunctionName, Description: "Exact function, hook or class name, e.g. get_post", Required: true},
				{
					Name:        argContentType,
					Description: "Reference family: functions (default), hooks or classes",
					Enum:        contentTypeNames(referenceTypes()),
				},
			},
		},
		{
			Name:        ToolHelloWorld,
			Description: "A simple greeting to check that the server is running.",
			Arguments: []domain.ToolArgument{
				{Name: argName, Description: "Name to greet (default World)"},
			},
		},
		{
			Name:        ToolHelloWP,
			Description: "A WordPress-themed greeting listing what the server can help with.",
			Arguments: []domain.ToolArgument{
				{Name: argName, Description: "Name to greet", Required: true},
			},
		},
	}
}

func referenceTypes() []domain.ContentType {
	return []domain.ContentType{domain.ContentFunctions, domain.ContentHooks, domain.ContentClasses}
}

func contentTypeNames(types []domain.ContentType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func sectionNames() []string {
	sections := domain.AllSections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return names
}
