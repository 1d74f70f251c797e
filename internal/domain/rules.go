package domain

// Pure precondition checks used by the services before any mutation. They
// operate on immutable snapshots, never re-read storage, and never retry.

// RequireRole fails with a NoAuthorityError when the acting user does not
// hold the role the operation requires.
func RequireRole(actor User, required Role) error {
	if actor.Role != required {
		return &NoAuthorityError{Required: required, Actual: actor.Role}
	}
	return nil
}

// RequireOwnership fails with a NotOwnerError when the acting user is not
// the owner of the property.
func RequireOwnership(property Property, actor User) error {
	if property.OwnerID != actor.ID {
		return &NotOwnerError{PropertyID: property.ID, UserID: actor.ID}
	}
	return nil
}

// RequirePropertyStatus fails with an InvalidPropertyStatusError when the
// property is not exactly in the expected state.
func RequirePropertyStatus(property Property, expected PropertyStatus) error {
	if property.Status != expected {
		return &InvalidPropertyStatusError{Current: property.Status, Expected: expected}
	}
	return nil
}

// RequireRequestStatus fails with an InvalidRequestStatusError when the
// request is not exactly in the expected state.
func RequireRequestStatus(request ContractRequest, expected RequestStatus) error {
	if request.Status != expected {
		return &InvalidRequestStatusError{Current: request.Status, Expected: expected}
	}
	return nil
}
