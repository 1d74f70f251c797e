package app

import (
	"context"
	"fmt"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// ListingService manages a landlord's property listings and exposes the
// filtered search tenants browse with.
type ListingService struct {
	properties domain.PropertyRepository
	publisher  domain.EventPublisher
}

// NewListingService creates a service with the given adapters.
func NewListingService(properties domain.PropertyRepository, publisher domain.EventPublisher) *ListingService {
	return &ListingService{
		properties: properties,
		publisher:  publisher,
	}
}

// CreateProperty lists a new property for the acting landlord. The gateway
// assigns the identifier; the listing starts AVAILABLE.
func (s *ListingService) CreateProperty(ctx context.Context, actor domain.User, location domain.Location, price domain.Price, propertyType domain.PropertyType, dealType domain.DealType) (domain.Property, error) {
	if err := domain.RequireRole(actor, domain.RoleLandlord); err != nil {
		return domain.Property{}, err
	}
	if err := location.Validate(); err != nil {
		return domain.Property{}, err
	}
	if err := price.Validate(dealType); err != nil {
		return domain.Property{}, err
	}

	property, err := s.properties.Create(ctx, domain.NewProperty(actor.ID, location, price, propertyType, dealType))
	if err != nil {
		return domain.Property{}, fmt.Errorf("creating property: %w", err)
	}

	if err := s.publisher.Publish(ctx, domain.EventPropertyListed, domain.DealEventPayload{
		PropertyID: property.ID,
		ActorID:    actor.ID,
	}); err != nil {
		return domain.Property{}, fmt.Errorf("publishing property listed event: %w", err)
	}

	return property, nil
}

// UpdateProperty changes the monetary terms of an AVAILABLE listing: deal
// type, deposit, and monthly rent, each optional. Location and category are
// fixed at listing time.
func (s *ListingService) UpdateProperty(ctx context.Context, actor domain.User, propertyID int64, update domain.PropertyUpdate) (domain.Property, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return domain.Property{}, err
	}

	if err := domain.RequireRole(actor, domain.RoleLandlord); err != nil {
		return domain.Property{}, err
	}
	if err := domain.RequireOwnership(property, actor); err != nil {
		return domain.Property{}, err
	}
	if err := domain.RequirePropertyStatus(property, domain.PropertyAvailable); err != nil {
		return domain.Property{}, err
	}

	updated, err := update.Apply(property)
	if err != nil {
		return domain.Property{}, err
	}

	if err := s.properties.Update(ctx, updated); err != nil {
		return domain.Property{}, fmt.Errorf("updating property: %w", err)
	}

	return updated, nil
}

// DeleteProperty removes an AVAILABLE listing. Properties under contract or
// completed are never deleted.
func (s *ListingService) DeleteProperty(ctx context.Context, actor domain.User, propertyID int64) error {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := domain.RequireRole(actor, domain.RoleLandlord); err != nil {
		return err
	}
	if err := domain.RequireOwnership(property, actor); err != nil {
		return err
	}
	if err := domain.RequirePropertyStatus(property, domain.PropertyAvailable); err != nil {
		return err
	}

	return s.properties.Delete(ctx, propertyID)
}

// GetProperty returns a listing by its identifier.
func (s *ListingService) GetProperty(ctx context.Context, id int64) (domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

// Search returns non-COMPLETED listings matching the filter. Callers must
// not depend on result order.
func (s *ListingService) Search(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	return s.properties.FindByFilter(ctx, filter)
}

// ListByOwner returns the acting user's own listings.
func (s *ListingService) ListByOwner(ctx context.Context, actor domain.User) ([]domain.Property, error) {
	return s.properties.FindByOwnerID(ctx, actor.ID)
}
