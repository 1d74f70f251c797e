package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus mirrors the completion of the originating request. A
// contract is only ever written in the COMPLETED state and never mutated.
type ContractStatus string

const ContractCompleted ContractStatus = "COMPLETED"

// Contract records a concluded deal between a landlord and a tenant. Its ID
// is the originating request's ID (one-to-one); Reference is an opaque handle
// safe to hand to external parties.
type Contract struct {
	ID          int64
	Reference   string
	OwnerID     int64
	RequesterID int64
	Status      ContractStatus
	CreatedAt   time.Time
}

// NewContract creates the contract record for a completed request.
func NewContract(requestID, ownerID, requesterID int64) Contract {
	return Contract{
		ID:          requestID,
		Reference:   uuid.NewString(),
		OwnerID:     ownerID,
		RequesterID: requesterID,
		Status:      ContractCompleted,
		CreatedAt:   time.Now().UTC(),
	}
}
