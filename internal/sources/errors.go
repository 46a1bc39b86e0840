package sources

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// StatusError records a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sources: HTTP %d from %s", e.StatusCode, e.URL)
}

// IsNotFound checks if the error indicates the resource does not exist.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound || statusErr.StatusCode == http.StatusGone
	}
	return false
}

// IsTimeout checks if the error is an exceeded deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classify converts a fetch failure into a report for the given source.
func classify(desc domain.SourceDescriptor, target string, err error) *domain.ErrorReport {
	host := hostOf(target)

	report := &domain.ErrorReport{
		TierID: desc.ID,
		Err:    err,
	}

	var statusErr *StatusError
	switch {
	case IsTimeout(err):
		report.Kind = domain.ErrorTimeout
		report.Message = fmt.Sprintf("%s did not respond within %s", host, desc.Timeout)
	case IsNotFound(err):
		report.Kind = domain.ErrorNotFound
		report.Message = fmt.Sprintf("%s has no page at %s", host, pathOf(target))
	case errors.As(err, &statusErr):
		report.Kind = domain.ErrorNetwork
		report.Message = fmt.Sprintf("%s answered with HTTP %d", host, statusErr.StatusCode)
	case errors.Is(err, context.Canceled):
		report.Kind = domain.ErrorNetwork
		report.Message = fmt.Sprintf("the request to %s was cancelled", host)
	default:
		report.Kind = domain.ErrorNetwork
		report.Message = fmt.Sprintf("could not reach %s", host)
	}

	return report
}

func hostOf(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return "the documentation server"
	}
	return u.Host
}

func pathOf(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
