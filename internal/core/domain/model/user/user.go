package user

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrNameIsRequired is returned when the user name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrEmailIsRequired is returned when the user email is empty.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// User represents an account known to the tracking system. Accounts are
// read-mostly: authentication and registration live with the external auth
// collaborator, and the only fields the application mutates are the
// owner-editable profile fields (name, phone).
type User struct {
	id    kernel.UUID
	name  string
	email string
	phone kernel.PhoneNumber
	role  Role

	isConstructed bool
}

// NewUser creates a validated User.
func NewUser(id kernel.UUID, name, email string, phone kernel.PhoneNumber, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPhone(phone),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Phone returns the user's phone number in canonical international format.
func (u *User) Phone() kernel.PhoneNumber { return u.phone }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// UpdateProfile mutates the owner-editable fields. Email and role are
// managed by the external auth collaborator and cannot be changed here.
// Either both fields update or neither does.
func (u *User) UpdateProfile(name string, phone kernel.PhoneNumber) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if err := phone.Validate(); err != nil {
		return err
	}

	u.name = name
	u.phone = phone
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
