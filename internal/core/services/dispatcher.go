package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/ports/driving"
	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.ToolDispatcher = (*Dispatcher)(nil)

// Tool names.
const (
	ToolSearchDocs     = "wp_search_docs"
	ToolVIPSearch      = "wp_vip_search"
	ToolFunctionLookup = "wp_function_lookup"
	ToolHelloWorld     = "hello_world"
	ToolHelloWP        = "hello_wp"
)

// Argument names.
const (
	argQuery        = "query"
	argContentType  = "content_type"
	argSection      = "section"
	argFunctionName = "function_name"
	argName         = "name"
)

// DefaultGreetingName is used by hello_world when no name is given.
const DefaultGreetingName = "World"

// Dispatcher validates tool arguments and routes them to the resolver.
type Dispatcher struct {
	resolver driving.Resolver
	newID    func() string
}

// NewDispatcher creates a dispatcher backed by resolver.
func NewDispatcher(resolver driving.Resolver) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		newID:    uuid.NewString,
	}
}

// Invoke runs one tool. Validation failures and unknown tools are returned
// as errors before any source is contacted; every other outcome is text.
func (d *Dispatcher) Invoke(ctx context.Context, toolName string, args map[string]any) (string, error) {
	log := logger.ForRequest(d.newID())
	ctx = logger.WithRequest(ctx, log)
	log.Debug("Invoke %s %v", toolName, args)

	switch toolName {
	case ToolHelloWorld:
		name, err := optionalString(args, argName)
		if err != nil {
			return "", err
		}
		if name == "" {
			name = DefaultGreetingName
		}
		return helloWorld(name), nil

	case ToolHelloWP:
		name, err := requiredString(args, argName)
		if err != nil {
			return "", err
		}
		return helloWP(name), nil
	}

	query, err := buildQuery(toolName, args)
	if err != nil {
		log.Warn("Rejected %s: %v", toolName, err)
		return "", err
	}

	outcome := d.resolver.Resolve(ctx, query)
	log.Info("%s %q: %s", query.Kind, query.Term, outcome.Status)
	if outcome.LastError != nil {
		log.Debug("Last tier error: %v", outcome.LastError)
	}

	return Render(outcome, query), nil
}

// Tools returns the specs of every tool, in a stable order.
func (d *Dispatcher) Tools() []domain.ToolSpec {
	return ToolSpecs()
}

func buildQuery(toolName string, args map[string]any) (domain.LookupQuery, error) {
	switch toolName {
	case ToolSearchDocs:
		term, err := requiredString(args, argQuery)
		if err != nil {
			return domain.LookupQuery{}, err
		}
		contentType, err := enumArg(args, argContentType, contentTypeNames(domain.AllContentTypes()))
		if err != nil {
			return domain.LookupQuery{}, err
		}
		ct := domain.ContentType(contentType)
		if ct == "" {
			ct = domain.ContentPosts
		}
		return domain.NewLookupQuery(ct.SearchKind(), term, "", ct)

	case ToolVIPSearch:
		term, err := requiredString(args, argQuery)
		if err != nil {
			return domain.LookupQuery{}, err
		}
		section, err := enumArg(args, argSection, sectionNames())
		if err != nil {
			return domain.LookupQuery{}, err
		}
		return domain.NewLookupQuery(domain.VipSearch, term, domain.Section(section), "")

	case ToolFunctionLookup:
		name, err := requiredString(args, argFunctionName)
		if err != nil {
			return domain.LookupQuery{}, err
		}
		contentType, err := enumArg(args, argContentType, contentTypeNames(referenceTypes()))
		if err != nil {
			return domain.LookupQuery{}, err
		}
		return domain.NewLookupQuery(domain.FunctionLookup, name, "", domain.ContentType(contentType))

	default:
		return domain.LookupQuery{}, &domain.ErrorReport{
			Kind:    domain.ErrorValidation,
			Message: fmt.Sprintf("unknown tool %q", toolName),
			Err:     domain.ErrUnknownTool,
		}
	}
}

// requiredString returns a non-empty string argument.
func requiredString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", domain.NewValidationError("missing required argument %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", domain.NewValidationError("argument %q must be a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError("argument %q must be a non-empty string", key)
	}
	return s, nil
}

// optionalString returns a string argument, or "" when absent.
func optionalString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", domain.NewValidationError("argument %q must be a string", key)
	}
	return strings.TrimSpace(s), nil
}

// enumArg returns an optional argument restricted to allowed values.
func enumArg(args map[string]any, key string, allowed []string) (string, error) {
	s, err := optionalString(args, key)
	if err != nil || s == "" {
		return s, err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", domain.NewValidationError("argument %q must be one of %s, got %q",
		key, strings.Join(allowed, ", "), s)
}

func helloWorld(name string) string {
	return fmt.Sprintf("Hello, %s! The WordPress documentation server is up and answering.", name)
}

func helloWP(name string) string {
	return fmt.Sprintf("Hello, %s! Welcome to the WordPress ecosystem.\n\n"+
		"This server can help you with:\n"+
		"- WordPress core documentation\n"+
		"- WordPress VIP platform guidance\n"+
		"- Development best practices\n"+
		"- Plugin and theme development\n\n"+
		"Happy coding!", name)
}
