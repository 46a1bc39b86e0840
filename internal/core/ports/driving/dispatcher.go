package driving

import (
	"context"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// ToolDispatcher validates tool invocations and routes them to the pipeline.
type ToolDispatcher interface {
	// Invoke runs a tool and returns its markdown text.
	// Only Validation failures (bad arguments, unknown tool) are returned as
	// errors; source failures are rendered into the text.
	Invoke(ctx context.Context, toolName string, args map[string]any) (string, error)

	// Tools lists the available tools.
	Tools() []domain.ToolSpec
}

// Resolver runs the resolution pipeline for one query.
type Resolver interface {
	// Resolve always converges to an outcome; it never returns an error.
	Resolve(ctx context.Context, query domain.LookupQuery) domain.PipelineOutcome
}
