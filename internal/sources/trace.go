package sources

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
)

var traceContext = propagation.TraceContext{}

// injectTraceparent propagates the span context carried by ctx, if any, as
// W3C traceparent and tracestate headers. The sampled flag is preserved.
func injectTraceparent(ctx context.Context, req *http.Request) {
	traceContext.Inject(ctx, propagation.HeaderCarrier(req.Header))
}
