package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

const tracerName = "github.com/neomorfeo/leaseflow/internal/adapter/otel"

// TracingPropertyRepository wraps a domain.PropertyRepository with
// OpenTelemetry tracing. The property status column is the only contended
// resource in the system, so this is the repository worth tracing closely.
type TracingPropertyRepository struct {
	next   domain.PropertyRepository
	tracer trace.Tracer
}

// Compile-time check: TracingPropertyRepository implements domain.PropertyRepository.
var _ domain.PropertyRepository = (*TracingPropertyRepository)(nil)

// NewTracingPropertyRepository creates a tracing decorator around the given
// repository.
func NewTracingPropertyRepository(next domain.PropertyRepository) *TracingPropertyRepository {
	return &TracingPropertyRepository{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (r *TracingPropertyRepository) Create(ctx context.Context, property domain.Property) (domain.Property, error) {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.Create",
		trace.WithAttributes(
			attribute.Int64("property.owner_id", property.OwnerID),
			attribute.String("property.deal_type", string(property.DealType)),
		),
	)
	defer span.End()

	created, err := r.next.Create(ctx, property)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int64("property.id", created.ID))
	}
	return created, err
}

func (r *TracingPropertyRepository) GetByID(ctx context.Context, id int64) (domain.Property, error) {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.GetByID",
		trace.WithAttributes(attribute.Int64("property.id", id)),
	)
	defer span.End()

	property, err := r.next.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return property, err
}

func (r *TracingPropertyRepository) FindByFilter(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.FindByFilter")
	defer span.End()

	if filter.City != nil {
		span.SetAttributes(attribute.String("filter.city", *filter.City))
	}
	if filter.District != nil {
		span.SetAttributes(attribute.String("filter.district", *filter.District))
	}

	properties, err := r.next.FindByFilter(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", len(properties)))
	}
	return properties, err
}

func (r *TracingPropertyRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.FindByOwnerID",
		trace.WithAttributes(attribute.Int64("property.owner_id", ownerID)),
	)
	defer span.End()

	properties, err := r.next.FindByOwnerID(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("result.count", len(properties)))
	}
	return properties, err
}

func (r *TracingPropertyRepository) Update(ctx context.Context, property domain.Property) error {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.Update",
		trace.WithAttributes(
			attribute.Int64("property.id", property.ID),
			attribute.String("property.status", string(property.Status)),
		),
	)
	defer span.End()

	err := r.next.Update(ctx, property)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingPropertyRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.Delete",
		trace.WithAttributes(attribute.Int64("property.id", id)),
	)
	defer span.End()

	err := r.next.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingPropertyRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.PropertyStatus) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "PropertyRepository.TransitionStatus",
		trace.WithAttributes(
			attribute.Int64("property.id", id),
			attribute.String("transition.from", string(from)),
			attribute.String("transition.to", string(to)),
		),
	)
	defer span.End()

	changed, err := r.next.TransitionStatus(ctx, id, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Bool("transition.changed", changed))
	}
	return changed, err
}
