// Package logger provides verbose logging for wpdocs.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the resolution pipeline.
// Stdout is never written: in MCP stdio mode it carries protocol traffic.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if prefix != "" {
		fmt.Fprintf(output, "[%s] [%s] "+format+"\n", append([]any{level, prefix}, args...)...)
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("WARN", "", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Request is a logger whose lines carry a request identifier, so the
// interleaved output of concurrent invocations can be told apart.
type Request struct {
	id string
}

// ForRequest returns a logger tagged with id.
func ForRequest(id string) *Request {
	return &Request{id: id}
}

// ID returns the request identifier.
func (r *Request) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Debug prints a tagged message if verbose mode is enabled.
func (r *Request) Debug(format string, args ...any) {
	logf("DEBUG", r.ID(), format, args...)
}

// Info prints a tagged message if verbose mode is enabled.
func (r *Request) Info(format string, args ...any) {
	logf("INFO", r.ID(), format, args...)
}

// Warn prints a tagged message if verbose mode is enabled.
func (r *Request) Warn(format string, args ...any) {
	logf("WARN", r.ID(), format, args...)
}

type requestKey struct{}

// WithRequest returns a context carrying r.
func WithRequest(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// FromContext returns the request logger stored in ctx. Without one, the
// returned logger writes untagged lines.
func FromContext(ctx context.Context) *Request {
	if r, ok := ctx.Value(requestKey{}).(*Request); ok && r != nil {
		return r
	}
	return &Request{}
}
