package domain

// Role is the capability a user acts under. Landlords list properties and
// decide on requests; tenants create requests.
type Role string

const (
	RoleLandlord Role = "LANDLORD"
	RoleTenant   Role = "TENANT"
)

// User is an externally supplied identity. There is no credential model:
// presence of a matching record is treated as successful authentication.
type User struct {
	ID    int64
	Email string
	Role  Role
}

// IsLandlord reports whether the user holds the landlord role.
func (u User) IsLandlord() bool { return u.Role == RoleLandlord }

// IsTenant reports whether the user holds the tenant role.
func (u User) IsTenant() bool { return u.Role == RoleTenant }
