package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRequestNotFound  = errors.New("contract request not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrPropertyAlreadyContracted is returned when a completion attempt
	// loses the race against a competing completion on the same property.
	ErrPropertyAlreadyContracted = errors.New("property already contracted by a competing request")
)

// NoAuthorityError is returned when the acting user's role does not permit
// the operation.
type NoAuthorityError struct {
	Required Role
	Actual   Role
}

func (e *NoAuthorityError) Error() string {
	return fmt.Sprintf("operation requires role %q, acting user has role %q", e.Required, e.Actual)
}

// NotOwnerError is returned when the acting user does not own the property
// the operation targets.
type NotOwnerError struct {
	PropertyID int64
	UserID     int64
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("user %d does not own property %d", e.UserID, e.PropertyID)
}

// InvalidPropertyStatusError is returned when a property is not in the state
// an operation requires. Event is set when a state transition was refused,
// Expected when a plain precondition check failed.
type InvalidPropertyStatusError struct {
	Current  PropertyStatus
	Expected PropertyStatus
	Event    PropertyEvent
}

func (e *InvalidPropertyStatusError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("property event %q is not valid from status %q", e.Event, e.Current)
	}
	return fmt.Sprintf("property status is %q, operation requires %q", e.Current, e.Expected)
}

// InvalidRequestStatusError is the request-side counterpart of
// InvalidPropertyStatusError.
type InvalidRequestStatusError struct {
	Current  RequestStatus
	Expected RequestStatus
	Event    RequestEvent
}

func (e *InvalidRequestStatusError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("request event %q is not valid from status %q", e.Event, e.Current)
	}
	return fmt.Sprintf("request status is %q, operation requires %q", e.Current, e.Expected)
}

// ValidationError is returned when listing input violates a domain rule.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
}
