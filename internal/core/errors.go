package core

import (
	"errors"
	"fmt"
)

var (
	// ErrIdentityUnresolvable means the identity object carries no usable
	// name under either convention.
	ErrIdentityUnresolvable = errors.New("identity lacks a usable name")

	// ErrCustomerNotFound means the derived name matched nobody in the
	// customer directory.
	ErrCustomerNotFound = errors.New("no matching customer")

	// ErrNoAccountsForCustomer means the matched customer owns zero
	// accounts; downstream lookups need an account id, so this is terminal.
	ErrNoAccountsForCustomer = errors.New("customer has no accounts")

	// ErrProfileNotFound means no stored profile exists for the user id.
	ErrProfileNotFound = errors.New("profile not found")
)

// UpstreamError reports a failed record-source fetch: which operation failed,
// the upstream HTTP status when one was received, and the underlying cause.
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
