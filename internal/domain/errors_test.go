package domain_test

import (
	"testing"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

func TestNoAuthorityError_Error(t *testing.T) {
	err := &domain.NoAuthorityError{Required: domain.RoleTenant, Actual: domain.RoleLandlord}
	want := `operation requires role "TENANT", acting user has role "LANDLORD"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNotOwnerError_Error(t *testing.T) {
	err := &domain.NotOwnerError{PropertyID: 3, UserID: 8}
	want := "user 8 does not own property 3"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidPropertyStatusError_Error(t *testing.T) {
	eventForm := &domain.InvalidPropertyStatusError{
		Current: domain.PropertyCompleted,
		Event:   domain.PropertyEventApprove,
	}
	want := `property event "approve" is not valid from status "COMPLETED"`
	if got := eventForm.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	expectedForm := &domain.InvalidPropertyStatusError{
		Current:  domain.PropertyInContract,
		Expected: domain.PropertyAvailable,
	}
	want = `property status is "IN_CONTRACT", operation requires "AVAILABLE"`
	if got := expectedForm.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidRequestStatusError_Error(t *testing.T) {
	err := &domain.InvalidRequestStatusError{
		Current: domain.RequestCompleted,
		Event:   domain.RequestEventComplete,
	}
	want := `request event "complete" is not valid from status "COMPLETED"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &domain.ValidationError{Field: "city", Detail: "city is required"}
	want := "invalid city: city is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
