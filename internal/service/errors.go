package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for specific conditions with errors.Is(); the transport layer
// maps them to its own status codes.
var (
	// ErrDuplicateAccount indicates the user already holds an account of the
	// requested type. At most one account per (user, account type) pair may
	// exist.
	ErrDuplicateAccount = errors.New("account of this type already exists")

	// ErrAccountNotFound indicates the account does not exist or is owned by
	// a different user. Ownership failures are deliberately indistinguishable
	// from missing accounts so callers cannot probe other users' accounts.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive indicates a funding operation targeted an account
	// whose status is not active.
	ErrAccountInactive = errors.New("account is not active")
)
