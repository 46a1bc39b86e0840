package domain

// OutcomeStatus is the terminal state of a pipeline run.
type OutcomeStatus int

const (
	// OutcomeFound means a tier produced at least one summary.
	OutcomeFound OutcomeStatus = iota

	// OutcomeEmpty means every permitted tier ran and none produced a summary.
	OutcomeEmpty

	// OutcomeFailed means a tier failed in a way that must be surfaced.
	OutcomeFailed
)

// String returns the status name.
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeFound:
		return "found"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return unknownDescription
	}
}

// PipelineOutcome is the single terminal result of one request.
type PipelineOutcome struct {
	Status OutcomeStatus

	// Summaries are populated for OutcomeFound, in source order.
	Summaries []DocumentSummary

	// SourceID is the descriptor ID of the tier that produced the summaries.
	SourceID string

	// SourceLabel is the descriptor label of that tier.
	SourceLabel string

	// Fallback is true when the summaries came from a tier after the first.
	Fallback bool

	// Err is populated for OutcomeFailed.
	Err *ErrorReport

	// LastError is the most recent tier failure, if any. For OutcomeEmpty it
	// explains why earlier tiers were skipped.
	LastError *ErrorReport
}

// Found builds a Found outcome.
func Found(summaries []DocumentSummary, sourceID string, fallback bool) PipelineOutcome {
	return PipelineOutcome{
		Status:    OutcomeFound,
		Summaries: summaries,
		SourceID:  sourceID,
		Fallback:  fallback,
	}
}

// Empty builds an Empty outcome.
func Empty(lastErr *ErrorReport) PipelineOutcome {
	return PipelineOutcome{Status: OutcomeEmpty, LastError: lastErr}
}

// Failed builds a Failed outcome.
func Failed(err *ErrorReport) PipelineOutcome {
	return PipelineOutcome{Status: OutcomeFailed, Err: err, LastError: err}
}
