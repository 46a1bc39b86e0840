package domain

import "strings"

const unknownDescription = "Unknown"

// LookupKind is the category of a request. Each kind selects a fixed tier ordering.
type LookupKind int

const (
	// PostsSearch searches general developer documentation posts.
	PostsSearch LookupKind = iota

	// FunctionsSearch searches the function reference by keyword.
	FunctionsSearch

	// HooksSearch searches the hook reference by keyword.
	HooksSearch

	// ClassesSearch searches the class reference by keyword.
	ClassesSearch

	// VipSearch searches the WordPress VIP documentation.
	VipSearch

	// FunctionLookup resolves an exact function, hook or class name.
	FunctionLookup
)

// String returns the kind name used in logs.
func (k LookupKind) String() string {
	switch k {
	case PostsSearch:
		return "posts_search"
	case FunctionsSearch:
		return "functions_search"
	case HooksSearch:
		return "hooks_search"
	case ClassesSearch:
		return "classes_search"
	case VipSearch:
		return "vip_search"
	case FunctionLookup:
		return "function_lookup"
	default:
		return unknownDescription
	}
}

// AllLookupKinds returns every lookup kind in declaration order.
func AllLookupKinds() []LookupKind {
	return []LookupKind{
		PostsSearch,
		FunctionsSearch,
		HooksSearch,
		ClassesSearch,
		VipSearch,
		FunctionLookup,
	}
}

// ContentType selects a family of WordPress developer content.
type ContentType string

// Available content types.
const (
	ContentPosts     ContentType = "posts"
	ContentFunctions ContentType = "functions"
	ContentHooks     ContentType = "hooks"
	ContentClasses   ContentType = "classes"
)

// IsValid returns true if the content type is recognised.
func (c ContentType) IsValid() bool {
	switch c {
	case ContentPosts, ContentFunctions, ContentHooks, ContentClasses:
		return true
	default:
		return false
	}
}

// IsReference returns true for the code reference families.
func (c ContentType) IsReference() bool {
	return c == ContentFunctions || c == ContentHooks || c == ContentClasses
}

// SearchKind returns the search kind for this content type.
func (c ContentType) SearchKind() LookupKind {
	switch c {
	case ContentFunctions:
		return FunctionsSearch
	case ContentHooks:
		return HooksSearch
	case ContentClasses:
		return ClassesSearch
	default:
		return PostsSearch
	}
}

// AllContentTypes returns all content types.
func AllContentTypes() []ContentType {
	return []ContentType{ContentPosts, ContentFunctions, ContentHooks, ContentClasses}
}

// Section narrows a VIP search to one area of the VIP documentation.
type Section string

// Available VIP sections.
const (
	SectionAll            Section = "all"
	SectionGuides         Section = "guides"
	SectionInfrastructure Section = "infrastructure"
	SectionVIPCLI         Section = "vip-cli"
	SectionVIPDashboard   Section = "vip-dashboard"
	SectionWordPressOnVIP Section = "wordpress-on-vip"
)

// IsValid returns true if the section is recognised.
func (s Section) IsValid() bool {
	switch s {
	case SectionAll, SectionGuides, SectionInfrastructure, SectionVIPCLI, SectionVIPDashboard, SectionWordPressOnVIP:
		return true
	default:
		return false
	}
}

// AllSections returns all VIP sections.
func AllSections() []Section {
	return []Section{
		SectionAll,
		SectionGuides,
		SectionInfrastructure,
		SectionVIPCLI,
		SectionVIPDashboard,
		SectionWordPressOnVIP,
	}
}

// LookupQuery is a validated documentation lookup request.
// It is a value type; build it with NewLookupQuery.
type LookupQuery struct {
	// Kind selects the tier ordering.
	Kind LookupKind

	// Term is the search term or exact reference name. Never empty.
	Term string

	// Section narrows VIP searches. Empty means SectionAll.
	Section Section

	// ContentType selects the reference family for lookups and searches.
	ContentType ContentType
}

// NewLookupQuery builds a query, trimming the term.
// An empty term or an unrecognised enum value yields a Validation report.
func NewLookupQuery(kind LookupKind, term string, section Section, contentType ContentType) (LookupQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return LookupQuery{}, NewValidationError("search term must be a non-empty string")
	}
	if section == "" {
		section = SectionAll
	}
	if !section.IsValid() {
		return LookupQuery{}, NewValidationError("invalid section %q", section)
	}
	if contentType == "" {
		contentType = defaultContentType(kind)
	}
	if !contentType.IsValid() {
		return LookupQuery{}, NewValidationError("invalid content type %q", contentType)
	}
	if kind == FunctionLookup && !contentType.IsReference() {
		return LookupQuery{}, NewValidationError("content type %q cannot be looked up by name", contentType)
	}

	return LookupQuery{
		Kind:        kind,
		Term:        term,
		Section:     section,
		ContentType: contentType,
	}, nil
}

func defaultContentType(kind LookupKind) ContentType {
	switch kind {
	case FunctionsSearch, FunctionLookup:
		return ContentFunctions
	case HooksSearch:
		return ContentHooks
	case ClassesSearch:
		return ContentClasses
	default:
		return ContentPosts
	}
}
