package domain

// PropertyFilter holds optional search criteria for listings. Nil or empty
// fields impose no constraint; supplied fields are ANDed. COMPLETED listings
// never match regardless of the other fields.
type PropertyFilter struct {
	City          *string
	District      *string
	PropertyTypes []PropertyType
	DealTypes     []DealType
	MinPrice      *int64
	MaxPrice      *int64
}

// Matches reports whether a property satisfies the filter. Price bounds are
// compared via ComparablePrice. The SQL gateway mirrors these semantics; this
// in-memory form is the reference implementation.
func (f PropertyFilter) Matches(p Property) bool {
	if p.Status == PropertyCompleted {
		return false
	}
	if f.City != nil && p.Location.City != *f.City {
		return false
	}
	if f.District != nil && p.Location.District != *f.District {
		return false
	}
	if len(f.PropertyTypes) > 0 && !containsPropertyType(f.PropertyTypes, p.PropertyType) {
		return false
	}
	if len(f.DealTypes) > 0 && !containsDealType(f.DealTypes, p.DealType) {
		return false
	}
	price := p.ComparablePrice()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}

func containsPropertyType(types []PropertyType, t PropertyType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func containsDealType(types []DealType, t DealType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
