package owm

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type tracingHelper struct {
	tracer trace.Tracer
}

func newTracingHelper(tracer trace.Tracer) *tracingHelper {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &tracingHelper{tracer: tracer}
}

func (t *tracingHelper) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...), trace.WithSpanKind(trace.SpanKindClient))
}
