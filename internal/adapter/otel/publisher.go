package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// TracingPublisher decorates a domain.EventPublisher so every deal event
// shows up as a span carrying the ids of the entities it touched.
type TracingPublisher struct {
	next   domain.EventPublisher
	tracer trace.Tracer
}

var _ domain.EventPublisher = (*TracingPublisher)(nil)

// NewTracingPublisher wraps next with span creation per Publish call.
func NewTracingPublisher(next domain.EventPublisher) *TracingPublisher {
	return &TracingPublisher{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (p *TracingPublisher) Publish(ctx context.Context, event domain.DealEvent, payload domain.DealEventPayload) error {
	attrs := []attribute.KeyValue{
		attribute.String("deal.event", string(event)),
		attribute.Int64("deal.property_id", payload.PropertyID),
		attribute.Int64("deal.request_id", payload.RequestID),
	}
	if payload.ContractID != 0 {
		attrs = append(attrs, attribute.Int64("deal.contract_id", payload.ContractID))
	}
	ctx, span := p.tracer.Start(ctx, "EventPublisher.Publish", trace.WithAttributes(attrs...))
	defer span.End()

	if err := p.next.Publish(ctx, event, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
