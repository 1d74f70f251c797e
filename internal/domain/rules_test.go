package domain_test

import (
	"errors"
	"testing"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

func TestRequireRole(t *testing.T) {
	tenant := domain.User{ID: 1, Email: "tenant@test", Role: domain.RoleTenant}

	if err := domain.RequireRole(tenant, domain.RoleTenant); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := domain.RequireRole(tenant, domain.RoleLandlord)
	var noAuth *domain.NoAuthorityError
	if !errors.As(err, &noAuth) {
		t.Fatalf("expected NoAuthorityError, got %v", err)
	}
	if noAuth.Required != domain.RoleLandlord || noAuth.Actual != domain.RoleTenant {
		t.Errorf("error fields = {%q, %q}, want {LANDLORD, TENANT}", noAuth.Required, noAuth.Actual)
	}
}

func TestRequireOwnership(t *testing.T) {
	owner := domain.User{ID: 5, Role: domain.RoleLandlord}
	stranger := domain.User{ID: 6, Role: domain.RoleLandlord}
	property := domain.NewProperty(5, domain.Location{City: "Seoul", District: "Jung-gu"},
		domain.Price{Deposit: 1}, domain.TypeOneRoom, domain.DealJeonse)
	property.ID = 11

	if err := domain.RequireOwnership(property, owner); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := domain.RequireOwnership(property, stranger)
	var notOwner *domain.NotOwnerError
	if !errors.As(err, &notOwner) {
		t.Fatalf("expected NotOwnerError, got %v", err)
	}
	if notOwner.PropertyID != 11 || notOwner.UserID != 6 {
		t.Errorf("error fields = {%d, %d}, want {11, 6}", notOwner.PropertyID, notOwner.UserID)
	}
}

func TestRequirePropertyStatus(t *testing.T) {
	property := domain.NewProperty(1, domain.Location{City: "Seoul", District: "Jung-gu"},
		domain.Price{Deposit: 1}, domain.TypeOneRoom, domain.DealJeonse)

	if err := domain.RequirePropertyStatus(property, domain.PropertyAvailable); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	property.Status = domain.PropertyInContract
	err := domain.RequirePropertyStatus(property, domain.PropertyAvailable)
	var invalid *domain.InvalidPropertyStatusError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPropertyStatusError, got %v", err)
	}
	if invalid.Current != domain.PropertyInContract || invalid.Expected != domain.PropertyAvailable {
		t.Errorf("error fields = {%q, %q}, want {IN_CONTRACT, AVAILABLE}", invalid.Current, invalid.Expected)
	}
}

func TestRequireRequestStatus(t *testing.T) {
	request := domain.NewContractRequest(1, 2)

	if err := domain.RequireRequestStatus(request, domain.RequestRequested); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	request.Status = domain.RequestApproved
	err := domain.RequireRequestStatus(request, domain.RequestRequested)
	var invalid *domain.InvalidRequestStatusError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRequestStatusError, got %v", err)
	}
}
