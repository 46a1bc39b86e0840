// Package domain defines the core business entities for wpdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LookupQuery: A validated documentation lookup request
//   - SourceDescriptor: The static description of one remote endpoint
//   - RawSourceResult: The transient payload fetched by a source adapter
//   - DocumentSummary: One normalised, plain-text documentation item
//   - PipelineOutcome: The terminal result of a resolution pipeline run
//   - ErrorReport: A classified failure
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
