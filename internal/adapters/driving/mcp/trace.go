package mcp

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/wpdocs/internal/logger"
)

// Request _meta keys carrying W3C trace context.
const (
	metaTraceparent = "traceparent"
	metaTracestate  = "tracestate"
)

var traceContext = propagation.TraceContext{}

// withRemoteTrace returns ctx carrying the caller's span context when the
// request _meta holds a valid traceparent. Invalid or missing values leave
// ctx unchanged.
func withRemoteTrace(ctx context.Context, meta map[string]any) context.Context {
	carrier := propagation.MapCarrier{}
	for _, key := range []string{metaTraceparent, metaTracestate} {
		if v, ok := meta[key].(string); ok && v != "" {
			carrier.Set(key, v)
		}
	}
	if carrier.Get(metaTraceparent) == "" {
		return ctx
	}

	ctx = traceContext.Extract(ctx, carrier)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		logger.Debug("Trace %s (sampled=%t)", sc.TraceID(), sc.IsSampled())
	}
	return ctx
}
