package httpapi

import (
	"context"
	"strings"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("fc-player-dashboard/internal/interfaces/httpapi")

// startSpan opens a span for handler entry points only. Middleware and
// response helpers share the request span, and untraced requests such as
// /healthz get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !isHandlerSpan(name) || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return apiTracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix) && len(name) > len(handlerSpanPrefix)
}

// queryAttributes records the filter query values as received, before the
// dashboard service trims and dedupes them. Absent params are omitted.
func queryAttributes(c player.Criteria) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if len(c.Leagues) > 0 {
		attrs = append(attrs, attribute.StringSlice("http.query."+queryLeague, c.Leagues))
	}
	if len(c.Positions) > 0 {
		attrs = append(attrs, attribute.StringSlice("http.query."+queryPosition, c.Positions))
	}
	if len(c.Teams) > 0 {
		attrs = append(attrs, attribute.StringSlice("http.query."+queryTeam, c.Teams))
	}
	return attrs
}
