package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/neomorfeo/leaseflow/internal/app"
	"github.com/neomorfeo/leaseflow/internal/domain"
)

type listingFixture struct {
	svc        *app.ListingService
	properties *mockPropertyRepo
	publisher  *mockPublisher
}

func newListingFixture() *listingFixture {
	properties := newMockPropertyRepo()
	publisher := &mockPublisher{}
	return &listingFixture{
		svc:        app.NewListingService(properties, publisher),
		properties: properties,
		publisher:  publisher,
	}
}

func TestCreateProperty_Success(t *testing.T) {
	f := newListingFixture()

	property, err := f.svc.CreateProperty(context.Background(), landlord,
		domain.Location{City: "Seoul", District: "Mapo-gu"},
		domain.Price{Deposit: 10_000_000, MonthlyRent: 800_000},
		domain.TypeVilla, domain.DealMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if property.ID == 0 {
		t.Error("ID should be assigned")
	}
	if property.Status != domain.PropertyAvailable {
		t.Errorf("Status = %q, want %q", property.Status, domain.PropertyAvailable)
	}
	if f.publisher.last() != domain.EventPropertyListed {
		t.Errorf("last event = %q, want %q", f.publisher.last(), domain.EventPropertyListed)
	}
}

func TestCreateProperty_TenantDenied(t *testing.T) {
	f := newListingFixture()

	_, err := f.svc.CreateProperty(context.Background(), tenant,
		domain.Location{City: "Seoul", District: "Mapo-gu"},
		domain.Price{Deposit: 10_000_000},
		domain.TypeVilla, domain.DealJeonse)
	var noAuth *domain.NoAuthorityError
	if !errors.As(err, &noAuth) {
		t.Fatalf("expected NoAuthorityError, got %v", err)
	}
	if noAuth.Required != domain.RoleLandlord {
		t.Errorf("Required = %q, want %q", noAuth.Required, domain.RoleLandlord)
	}
}

func TestCreateProperty_InvalidInput(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		location domain.Location
		price    domain.Price
		dealType domain.DealType
	}{
		{
			name:     "missing city",
			location: domain.Location{District: "Mapo-gu"},
			price:    domain.Price{Deposit: 1},
			dealType: domain.DealJeonse,
		},
		{
			name:     "negative deposit",
			location: domain.Location{City: "Seoul", District: "Mapo-gu"},
			price:    domain.Price{Deposit: -1},
			dealType: domain.DealJeonse,
		},
		{
			name:     "rent on jeonse",
			location: domain.Location{City: "Seoul", District: "Mapo-gu"},
			price:    domain.Price{Deposit: 1, MonthlyRent: 500_000},
			dealType: domain.DealJeonse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateProperty(ctx, landlord, tt.location, tt.price, domain.TypeApartment, tt.dealType)
			var invalid *domain.ValidationError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestUpdateProperty_Deposit(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Gangnam-gu"},
		domain.Price{Deposit: 50_000_000},
		domain.TypeApartment, domain.DealJeonse)

	newDeposit := int64(55_000_000)
	updated, err := f.svc.UpdateProperty(ctx, landlord, property.ID, domain.PropertyUpdate{Deposit: &newDeposit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price.Deposit != 55_000_000 {
		t.Errorf("Deposit = %d, want 55000000", updated.Price.Deposit)
	}
	if updated.DealType != domain.DealJeonse {
		t.Errorf("DealType = %q, want unchanged %q", updated.DealType, domain.DealJeonse)
	}
}

func TestUpdateProperty_DealTypeChange(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Mapo-gu"},
		domain.Price{Deposit: 10_000_000, MonthlyRent: 800_000},
		domain.TypeVilla, domain.DealMonthly)

	// Converting to JEONSE without an explicit rent drops the rent.
	jeonse := domain.DealJeonse
	updated, err := f.svc.UpdateProperty(ctx, landlord, property.ID, domain.PropertyUpdate{DealType: &jeonse})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DealType != domain.DealJeonse {
		t.Errorf("DealType = %q, want %q", updated.DealType, domain.DealJeonse)
	}
	if updated.Price.MonthlyRent != 0 {
		t.Errorf("MonthlyRent = %d, want 0 after leaving MONTHLY", updated.Price.MonthlyRent)
	}
}

func TestUpdateProperty_RentOnJeonseRejected(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Gangnam-gu"},
		domain.Price{Deposit: 50_000_000},
		domain.TypeApartment, domain.DealJeonse)

	rent := int64(500_000)
	_, err := f.svc.UpdateProperty(ctx, landlord, property.ID, domain.PropertyUpdate{MonthlyRent: &rent})
	var invalid *domain.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateProperty_NotOwner(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Gangnam-gu"},
		domain.Price{Deposit: 50_000_000},
		domain.TypeApartment, domain.DealJeonse)

	other := domain.User{ID: 99, Email: "other@test", Role: domain.RoleLandlord}
	newDeposit := int64(1)
	_, err := f.svc.UpdateProperty(ctx, other, property.ID, domain.PropertyUpdate{Deposit: &newDeposit})
	var notOwner *domain.NotOwnerError
	if !errors.As(err, &notOwner) {
		t.Fatalf("expected NotOwnerError, got %v", err)
	}
}

func TestUpdateProperty_NotAvailable(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Gangnam-gu"},
		domain.Price{Deposit: 50_000_000},
		domain.TypeApartment, domain.DealJeonse)
	property.Status = domain.PropertyInContract
	if err := f.properties.Update(ctx, property); err != nil {
		t.Fatalf("updating fixture: %v", err)
	}

	newDeposit := int64(1)
	_, err := f.svc.UpdateProperty(ctx, landlord, property.ID, domain.PropertyUpdate{Deposit: &newDeposit})
	var invalid *domain.InvalidPropertyStatusError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPropertyStatusError, got %v", err)
	}
}

func TestDeleteProperty_Success(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Busan", District: "Haeundae-gu"},
		domain.Price{Deposit: 30_000_000},
		domain.TypeOneRoom, domain.DealJeonse)

	if err := f.svc.DeleteProperty(ctx, landlord, property.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.svc.GetProperty(ctx, property.ID)
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound after delete, got %v", err)
	}
}

func TestDeleteProperty_InContractDenied(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	property, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Busan", District: "Haeundae-gu"},
		domain.Price{Deposit: 30_000_000},
		domain.TypeOneRoom, domain.DealJeonse)
	property.Status = domain.PropertyInContract
	if err := f.properties.Update(ctx, property); err != nil {
		t.Fatalf("updating fixture: %v", err)
	}

	err := f.svc.DeleteProperty(ctx, landlord, property.ID)
	var invalid *domain.InvalidPropertyStatusError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPropertyStatusError, got %v", err)
	}
}

func TestSearch_ExcludesCompleted(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	open, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Gangnam-gu"},
		domain.Price{Deposit: 50_000_000},
		domain.TypeApartment, domain.DealJeonse)

	done, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Seoul", District: "Mapo-gu"},
		domain.Price{Deposit: 20_000_000},
		domain.TypeVilla, domain.DealJeonse)
	done.Status = domain.PropertyCompleted
	if err := f.properties.Update(ctx, done); err != nil {
		t.Fatalf("updating fixture: %v", err)
	}

	results, err := f.svc.Search(ctx, domain.PropertyFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].ID != open.ID {
		t.Errorf("result ID = %d, want %d", results[0].ID, open.ID)
	}
}

func TestListByOwner(t *testing.T) {
	f := newListingFixture()
	ctx := context.Background()

	mine, _ := f.svc.CreateProperty(ctx, landlord,
		domain.Location{City: "Daegu", District: "Suseong-gu"},
		domain.Price{Deposit: 15_000_000},
		domain.TypeOfficetel, domain.DealJeonse)

	other := domain.User{ID: 7, Email: "other@test", Role: domain.RoleLandlord}
	if _, err := f.svc.CreateProperty(ctx, other,
		domain.Location{City: "Daegu", District: "Jung-gu"},
		domain.Price{Deposit: 15_000_000},
		domain.TypeOfficetel, domain.DealJeonse); err != nil {
		t.Fatalf("creating fixture: %v", err)
	}

	results, err := f.svc.ListByOwner(ctx, landlord)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != mine.ID {
		t.Fatalf("got %v, want only property %d", results, mine.ID)
	}
}
