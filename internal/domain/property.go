package domain

import "time"

// PropertyStatus represents the lifecycle state of a listed property.
type PropertyStatus string

const (
	PropertyAvailable  PropertyStatus = "AVAILABLE"
	PropertyInContract PropertyStatus = "IN_CONTRACT"
	PropertyCompleted  PropertyStatus = "COMPLETED"
)

// PropertyEvent represents an action that triggers a property state transition.
type PropertyEvent string

const (
	// PropertyEventApprove marks the property as under contract when the
	// landlord approves a request against it.
	PropertyEventApprove PropertyEvent = "approve"
	// PropertyEventRelease returns a property to the market after a
	// rejection while it was under contract.
	PropertyEventRelease PropertyEvent = "release"
	// PropertyEventComplete closes the deal. Terminal.
	PropertyEventComplete PropertyEvent = "complete"
)

// PropertyTransition defines a valid state change: an event moves a property
// from Src to Dst.
type PropertyTransition struct {
	Event PropertyEvent
	Src   PropertyStatus
	Dst   PropertyStatus
}

// PropertyTransitions defines all valid property state changes. COMPLETED has
// no outgoing edges. This is domain knowledge consumed by the FSM adapter.
var PropertyTransitions = []PropertyTransition{
	{Event: PropertyEventApprove, Src: PropertyAvailable, Dst: PropertyInContract},
	{Event: PropertyEventRelease, Src: PropertyInContract, Dst: PropertyAvailable},
	{Event: PropertyEventComplete, Src: PropertyInContract, Dst: PropertyCompleted},
}

// PropertyType is the category of a listed property.
type PropertyType string

const (
	TypeApartment PropertyType = "APARTMENT"
	TypeVilla     PropertyType = "VILLA"
	TypeOfficetel PropertyType = "OFFICETEL"
	TypeOneRoom   PropertyType = "ONE_ROOM"
)

// DealType is the transaction mode of a listing. It determines which price
// fields are meaningful: MONTHLY deals carry a monthly rent on top of the
// deposit, JEONSE and SALE use the deposit alone.
type DealType string

const (
	DealJeonse  DealType = "JEONSE"
	DealMonthly DealType = "MONTHLY"
	DealSale    DealType = "SALE"
)

// Location is a two-level address. Both levels are required.
type Location struct {
	City     string
	District string
}

// Validate reports whether the location is complete.
func (l Location) Validate() error {
	if l.City == "" {
		return &ValidationError{Field: "city", Detail: "city is required"}
	}
	if l.District == "" {
		return &ValidationError{Field: "district", Detail: "district is required"}
	}
	return nil
}

// Price holds the monetary terms of a listing, in won.
type Price struct {
	Deposit     int64
	MonthlyRent int64
}

// Validate checks the price against the deal type: amounts must be
// non-negative and monthly rent is only meaningful for MONTHLY deals.
func (p Price) Validate(dealType DealType) error {
	if p.Deposit < 0 {
		return &ValidationError{Field: "deposit", Detail: "deposit must not be negative"}
	}
	if p.MonthlyRent < 0 {
		return &ValidationError{Field: "monthly_rent", Detail: "monthly rent must not be negative"}
	}
	if dealType != DealMonthly && p.MonthlyRent != 0 {
		return &ValidationError{Field: "monthly_rent", Detail: "monthly rent applies only to MONTHLY deals"}
	}
	return nil
}

// Property is a listing offered by a landlord. The ID is assigned by the
// persistence gateway on first save and never reused.
type Property struct {
	ID           int64
	OwnerID      int64
	Location     Location
	Price        Price
	PropertyType PropertyType
	DealType     DealType
	Status       PropertyStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProperty creates a listing in the initial AVAILABLE state. The ID is
// zero until the gateway assigns one.
func NewProperty(ownerID int64, location Location, price Price, propertyType PropertyType, dealType DealType) Property {
	now := time.Now().UTC()
	return Property{
		OwnerID:      ownerID,
		Location:     location,
		Price:        price,
		PropertyType: propertyType,
		DealType:     dealType,
		Status:       PropertyAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ComparablePrice returns the amount a price bound is matched against:
// monthly rent for MONTHLY deals, deposit otherwise.
func (p Property) ComparablePrice() int64 {
	if p.DealType == DealMonthly {
		return p.Price.MonthlyRent
	}
	return p.Price.Deposit
}

// PropertyUpdate is a partial change to a listing's monetary terms. Nil
// fields keep their current value. Location and category are fixed at
// listing time; relisting is the way to change those.
type PropertyUpdate struct {
	DealType    *DealType
	Deposit     *int64
	MonthlyRent *int64
}

// Apply merges the update into the property and validates the result. A
// move away from MONTHLY without an explicit rent drops the rent to zero
// rather than failing validation on a stale value.
func (u PropertyUpdate) Apply(p Property) (Property, error) {
	if u.DealType != nil {
		p.DealType = *u.DealType
	}
	if u.Deposit != nil {
		p.Price.Deposit = *u.Deposit
	}
	if u.MonthlyRent != nil {
		p.Price.MonthlyRent = *u.MonthlyRent
	}
	if p.DealType != DealMonthly && u.MonthlyRent == nil {
		p.Price.MonthlyRent = 0
	}
	if err := p.Price.Validate(p.DealType); err != nil {
		return Property{}, err
	}
	return p, nil
}
