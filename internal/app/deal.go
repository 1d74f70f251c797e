package app

import (
	"context"
	"fmt"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// DealService drives the coupled property/request state machines through the
// create → approve/reject → complete lifecycle. It is the only component
// that performs multi-entity state changes.
type DealService struct {
	properties  domain.PropertyRepository
	requests    domain.RequestRepository
	contracts   domain.ContractRepository
	propertyFSM domain.PropertyTransitionValidator
	requestFSM  domain.RequestTransitionValidator
	publisher   domain.EventPublisher
}

// NewDealService creates a service with the given adapters.
func NewDealService(
	properties domain.PropertyRepository,
	requests domain.RequestRepository,
	contracts domain.ContractRepository,
	propertyFSM domain.PropertyTransitionValidator,
	requestFSM domain.RequestTransitionValidator,
	publisher domain.EventPublisher,
) *DealService {
	return &DealService{
		properties:  properties,
		requests:    requests,
		contracts:   contracts,
		propertyFSM: propertyFSM,
		requestFSM:  requestFSM,
		publisher:   publisher,
	}
}

// CreateRequest files a tenant's contract request against an AVAILABLE
// property. The property stays AVAILABLE until the landlord approves, so
// several tenants may request the same listing before landlord action.
func (s *DealService) CreateRequest(ctx context.Context, actor domain.User, propertyID int64) (domain.ContractRequest, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return domain.ContractRequest{}, err
	}

	if err := domain.RequireRole(actor, domain.RoleTenant); err != nil {
		return domain.ContractRequest{}, err
	}
	if err := domain.RequirePropertyStatus(property, domain.PropertyAvailable); err != nil {
		return domain.ContractRequest{}, err
	}

	request, err := s.requests.Create(ctx, domain.NewContractRequest(actor.ID, property.ID))
	if err != nil {
		return domain.ContractRequest{}, fmt.Errorf("creating contract request: %w", err)
	}

	if err := s.publisher.Publish(ctx, domain.EventRequestCreated, domain.DealEventPayload{
		PropertyID: property.ID,
		RequestID:  request.ID,
		ActorID:    actor.ID,
	}); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("publishing request created event: %w", err)
	}

	return request, nil
}

// ApproveRequest moves a REQUESTED request to APPROVED and takes the
// property off the market. Only the property's owner may approve.
func (s *DealService) ApproveRequest(ctx context.Context, actor domain.User, requestID int64) (domain.ContractRequest, error) {
	request, property, err := s.loadRequestWithProperty(ctx, requestID)
	if err != nil {
		return domain.ContractRequest{}, err
	}

	if err := s.requireLandlordOwner(actor, property); err != nil {
		return domain.ContractRequest{}, err
	}

	newRequestStatus, err := s.requestFSM.Apply(ctx, request.Status, domain.RequestEventApprove)
	if err != nil {
		return domain.ContractRequest{}, err
	}
	newPropertyStatus, err := s.propertyFSM.Apply(ctx, property.Status, domain.PropertyEventApprove)
	if err != nil {
		return domain.ContractRequest{}, err
	}

	request.Status = newRequestStatus
	if err := s.requests.Update(ctx, request); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("updating request: %w", err)
	}

	property.Status = newPropertyStatus
	if err := s.properties.Update(ctx, property); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("updating property: %w", err)
	}

	if err := s.publisher.Publish(ctx, domain.EventRequestApproved, domain.DealEventPayload{
		PropertyID: property.ID,
		RequestID:  request.ID,
		ActorID:    actor.ID,
	}); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("publishing request approved event: %w", err)
	}

	return request, nil
}

// RejectRequest moves a REQUESTED request to REJECTED. The property keeps —
// or regains — its AVAILABLE status, so the listing returns to the market.
func (s *DealService) RejectRequest(ctx context.Context, actor domain.User, requestID int64) (domain.ContractRequest, error) {
	request, property, err := s.loadRequestWithProperty(ctx, requestID)
	if err != nil {
		return domain.ContractRequest{}, err
	}

	if err := s.requireLandlordOwner(actor, property); err != nil {
		return domain.ContractRequest{}, err
	}

	// The transition table also allows reject from APPROVED, but that edge
	// is reserved for the completion race loser. Landlord rejection only
	// applies to pending requests.
	if err := domain.RequireRequestStatus(request, domain.RequestRequested); err != nil {
		return domain.ContractRequest{}, err
	}

	newRequestStatus, err := s.requestFSM.Apply(ctx, request.Status, domain.RequestEventReject)
	if err != nil {
		return domain.ContractRequest{}, err
	}

	request.Status = newRequestStatus
	if err := s.requests.Update(ctx, request); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("updating request: %w", err)
	}

	// Under the canonical rule the property never left AVAILABLE for a
	// merely-requested request. Rows written by the older flip-on-create
	// rule are released here.
	if property.Status == domain.PropertyInContract {
		if _, err := s.properties.TransitionStatus(ctx, property.ID, domain.PropertyInContract, domain.PropertyAvailable); err != nil {
			return domain.ContractRequest{}, fmt.Errorf("releasing property: %w", err)
		}
	}

	if err := s.publisher.Publish(ctx, domain.EventRequestRejected, domain.DealEventPayload{
		PropertyID: property.ID,
		RequestID:  request.ID,
		ActorID:    actor.ID,
	}); err != nil {
		return domain.ContractRequest{}, fmt.Errorf("publishing request rejected event: %w", err)
	}

	return request, nil
}

// CompleteContract finalizes an APPROVED request: the property moves to
// COMPLETED via a conditional write, the request to COMPLETED, and a
// Contract is recorded. Either party may trigger completion, so no actor
// check applies.
//
// Concurrency: two completions racing on the same property are resolved by
// the conditional status transition alone. A zero-row result is
// authoritative proof of loss; the losing request is deterministically moved
// to REJECTED so it never lingers in APPROVED.
func (s *DealService) CompleteContract(ctx context.Context, requestID int64) (domain.Contract, error) {
	request, property, err := s.loadRequestWithProperty(ctx, requestID)
	if err != nil {
		return domain.Contract{}, err
	}

	newRequestStatus, err := s.requestFSM.Apply(ctx, request.Status, domain.RequestEventComplete)
	if err != nil {
		return domain.Contract{}, err
	}

	changed, err := s.properties.TransitionStatus(ctx, property.ID, domain.PropertyInContract, domain.PropertyCompleted)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("completing property: %w", err)
	}
	if !changed {
		request.Status = domain.RequestRejected
		if err := s.requests.Update(ctx, request); err != nil {
			return domain.Contract{}, fmt.Errorf("rejecting losing request: %w", err)
		}
		return domain.Contract{}, domain.ErrPropertyAlreadyContracted
	}

	request.Status = newRequestStatus
	if err := s.requests.Update(ctx, request); err != nil {
		return domain.Contract{}, fmt.Errorf("updating request: %w", err)
	}

	contract, err := s.contracts.Create(ctx, domain.NewContract(request.ID, property.OwnerID, request.RequesterID))
	if err != nil {
		return domain.Contract{}, fmt.Errorf("creating contract: %w", err)
	}

	if err := s.publisher.Publish(ctx, domain.EventContractCompleted, domain.DealEventPayload{
		PropertyID: property.ID,
		RequestID:  request.ID,
		ContractID: contract.ID,
	}); err != nil {
		return domain.Contract{}, fmt.Errorf("publishing contract completed event: %w", err)
	}

	return contract, nil
}

// GetContract returns a concluded deal by its identifier.
func (s *DealService) GetContract(ctx context.Context, id int64) (domain.Contract, error) {
	return s.contracts.GetByID(ctx, id)
}

// ListRequestsByRequester returns the acting user's own requests.
func (s *DealService) ListRequestsByRequester(ctx context.Context, actor domain.User) ([]domain.ContractRequest, error) {
	return s.requests.FindByRequesterID(ctx, actor.ID)
}

func (s *DealService) loadRequestWithProperty(ctx context.Context, requestID int64) (domain.ContractRequest, domain.Property, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return domain.ContractRequest{}, domain.Property{}, err
	}

	property, err := s.properties.GetByID(ctx, request.PropertyID)
	if err != nil {
		return domain.ContractRequest{}, domain.Property{}, err
	}

	return request, property, nil
}

func (s *DealService) requireLandlordOwner(actor domain.User, property domain.Property) error {
	if err := domain.RequireRole(actor, domain.RoleLandlord); err != nil {
		return err
	}
	return domain.RequireOwnership(property, actor)
}
