package domain

import "errors"

// Sentinel errors for registration attempts. Controllers map these to HTTP
// statuses; none of them leaves the ledger partially mutated.
var (
	// Validation errors, caught before any shared state is touched.
	ErrMissingName  = errors.New("name is required")
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidEmail = errors.New("email address is not valid")

	// ErrMissingIdentity means the request carried no visitor token yet;
	// the client retries once its cookie has been set.
	ErrMissingIdentity = errors.New("missing visitor identity")

	// Conflict errors: a name, email, or visitor may complete at most one
	// registration system-wide.
	ErrDuplicateName     = errors.New("name is already registered")
	ErrDuplicateEmail    = errors.New("email is already registered")
	ErrDuplicateIdentity = errors.New("only one registration per visitor is allowed")

	ErrUnknownGroup = errors.New("group does not exist")
	ErrGroupFull    = errors.New("group has no seats left")
)
