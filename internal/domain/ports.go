package domain

import "context"

// PropertyRepository defines the persistence contract for listings. Create
// assigns the identifier; the returned entity carries it.
type PropertyRepository interface {
	Create(ctx context.Context, property Property) (Property, error)
	GetByID(ctx context.Context, id int64) (Property, error)
	FindByFilter(ctx context.Context, filter PropertyFilter) ([]Property, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]Property, error)
	Update(ctx context.Context, property Property) error
	Delete(ctx context.Context, id int64) error

	// TransitionStatus sets the property's status to `to` only if it is
	// currently `from`, reporting whether the change actually occurred.
	// This is the single primitive that lets the deal service detect a
	// lost completion race without a separate locking mechanism.
	TransitionStatus(ctx context.Context, id int64, from, to PropertyStatus) (bool, error)
}

// RequestRepository defines the persistence contract for contract requests.
type RequestRepository interface {
	Create(ctx context.Context, request ContractRequest) (ContractRequest, error)
	GetByID(ctx context.Context, id int64) (ContractRequest, error)
	FindByRequesterID(ctx context.Context, requesterID int64) ([]ContractRequest, error)
	Update(ctx context.Context, request ContractRequest) error
}

// ContractRepository defines the persistence contract for concluded deals.
// Contracts are written once and never updated.
type ContractRepository interface {
	Create(ctx context.Context, contract Contract) (Contract, error)
	GetByID(ctx context.Context, id int64) (Contract, error)
}

// UserRepository defines the lookup contract for identities.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

// PropertyTransitionValidator checks property state changes against the
// transition table and returns the destination status.
type PropertyTransitionValidator interface {
	Apply(ctx context.Context, current PropertyStatus, event PropertyEvent) (PropertyStatus, error)
}

// RequestTransitionValidator checks request state changes against the
// transition table and returns the destination status.
type RequestTransitionValidator interface {
	Apply(ctx context.Context, current RequestStatus, event RequestEvent) (RequestStatus, error)
}

// DealEvent identifies a fact about the deal lifecycle worth broadcasting.
type DealEvent string

const (
	EventPropertyListed    DealEvent = "property.listed"
	EventRequestCreated    DealEvent = "request.created"
	EventRequestApproved   DealEvent = "request.approved"
	EventRequestRejected   DealEvent = "request.rejected"
	EventContractCompleted DealEvent = "contract.completed"
)

// DealEventPayload carries the identifiers relevant to a deal event. Fields
// that do not apply to a given event are zero.
type DealEventPayload struct {
	PropertyID int64
	RequestID  int64
	ContractID int64
	ActorID    int64
}

// EventPublisher defines the contract for emitting deal events.
type EventPublisher interface {
	Publish(ctx context.Context, event DealEvent, payload DealEventPayload) error
}
