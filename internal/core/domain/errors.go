package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent request-level failures.
// These are distinct from the classified source failures carried by ErrorReport.
var (
	// ErrInvalidInput indicates a missing or mistyped tool argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTool indicates the requested tool is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrUnknownKind indicates a lookup kind with no tier ordering.
	ErrUnknownKind = errors.New("unknown lookup kind")
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	// ErrorValidation is a bad or missing caller argument.
	ErrorValidation ErrorKind = iota

	// ErrorNetwork is a transport failure or unexpected HTTP status.
	ErrorNetwork

	// ErrorTimeout is an adapter call that exceeded its deadline.
	ErrorTimeout

	// ErrorNotFound is a remote "no such resource" answer.
	ErrorNotFound

	// ErrorParseDegraded is a malformed document shape. It is logged,
	// never returned to callers.
	ErrorParseDegraded
)

// String returns the internal name of the kind.
// These names are for logs only and never reach end users.
func (k ErrorKind) String() string {
	switch k {
	case ErrorValidation:
		return "Validation"
	case ErrorNetwork:
		return "Network"
	case ErrorTimeout:
		return "Timeout"
	case ErrorNotFound:
		return "NotFound"
	case ErrorParseDegraded:
		return "ParseDegraded"
	default:
		return "Unknown"
	}
}

// AllErrorKinds returns every error kind.
func AllErrorKinds() []ErrorKind {
	return []ErrorKind{
		ErrorValidation,
		ErrorNetwork,
		ErrorTimeout,
		ErrorNotFound,
		ErrorParseDegraded,
	}
}

// ErrorReport is a classified failure. Message is human readable and safe to
// show to end users; TierID names the source that failed, if any.
type ErrorReport struct {
	Kind    ErrorKind
	Message string
	TierID  string

	// Err is the underlying cause, kept for logs and errors.Is.
	Err error
}

func (e *ErrorReport) Error() string {
	if e.TierID != "" {
		return fmt.Sprintf("%s: %s", e.TierID, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ErrorReport) Unwrap() error {
	return e.Err
}

// NewValidationError returns a Validation report wrapping ErrInvalidInput.
func NewValidationError(format string, args ...any) *ErrorReport {
	return &ErrorReport{
		Kind:    ErrorValidation,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrInvalidInput,
	}
}

// AsErrorReport recovers an ErrorReport from err. Unclassified errors are
// reported as Network failures so callers always get a kind.
func AsErrorReport(err error) *ErrorReport {
	if err == nil {
		return nil
	}
	var report *ErrorReport
	if errors.As(err, &report) {
		return report
	}
	return &ErrorReport{
		Kind:    ErrorNetwork,
		Message: err.Error(),
		Err:     err,
	}
}

// IsValidation reports whether err is a Validation failure.
func IsValidation(err error) bool {
	var report *ErrorReport
	if errors.As(err, &report) {
		return report.Kind == ErrorValidation
	}
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUnknownTool)
}
