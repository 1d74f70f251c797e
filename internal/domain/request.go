package domain

import "time"

// RequestStatus represents the lifecycle state of a contract request.
type RequestStatus string

const (
	RequestRequested RequestStatus = "REQUESTED"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCompleted RequestStatus = "COMPLETED"
)

// RequestEvent represents an action that triggers a request state transition.
type RequestEvent string

const (
	RequestEventApprove  RequestEvent = "approve"
	RequestEventReject   RequestEvent = "reject"
	RequestEventComplete RequestEvent = "complete"
)

// RequestTransition defines a valid state change: an event moves a request
// from Src to Dst.
type RequestTransition struct {
	Event RequestEvent
	Src   RequestStatus
	Dst   RequestStatus
}

// RequestTransitions defines all valid request state changes. REJECTED and
// COMPLETED are terminal. The APPROVED → REJECTED edge exists only for the
// completion race loser; landlord-initiated rejection requires REQUESTED.
var RequestTransitions = []RequestTransition{
	{Event: RequestEventApprove, Src: RequestRequested, Dst: RequestApproved},
	{Event: RequestEventReject, Src: RequestRequested, Dst: RequestRejected},
	{Event: RequestEventReject, Src: RequestApproved, Dst: RequestRejected},
	{Event: RequestEventComplete, Src: RequestApproved, Dst: RequestCompleted},
}

// ContractRequest is a tenant's offer to contract on a property. The ID is
// assigned by the persistence gateway on first save.
type ContractRequest struct {
	ID          int64
	RequesterID int64
	PropertyID  int64
	Status      RequestStatus
	CreatedAt   time.Time
}

// NewContractRequest creates a request in the initial REQUESTED state.
func NewContractRequest(requesterID, propertyID int64) ContractRequest {
	return ContractRequest{
		RequesterID: requesterID,
		PropertyID:  propertyID,
		Status:      RequestRequested,
		CreatedAt:   time.Now().UTC(),
	}
}
