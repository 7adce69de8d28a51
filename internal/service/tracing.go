package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/shaharia-lab/salon-notify/internal/service")

// startProviderSpan opens a span around one provider call.
func startProviderSpan(ctx context.Context, name, channel, provider string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("notification.channel", channel),
			attribute.String("notification.provider", provider),
		),
	)
}

func endProviderSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
	}
	span.End()
}
