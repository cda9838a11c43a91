package user

import (
	"fmt"
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// Role determines which operations an account may perform.
// Customers act on their own parcels; dispatchers act on any parcel;
// admins are dispatchers with account management on top (managed outside
// this application).
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer may create, track and cancel their own parcels.
	RoleCustomer

	// RoleDispatcher may assign parcels and update status on any parcel.
	RoleDispatcher

	// RoleAdmin has dispatcher rights plus account management.
	RoleAdmin
)

// ParseRole normalizes a stored role string. Unrecognized input parses to RoleUnknown.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "customer":
		return RoleCustomer
	case "dispatcher":
		return RoleDispatcher
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleDispatcher && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleDispatcher:
		return "dispatcher"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// CanDispatch reports whether the role may perform dispatcher operations.
func (r Role) CanDispatch() bool {
	return r == RoleDispatcher || r == RoleAdmin
}
