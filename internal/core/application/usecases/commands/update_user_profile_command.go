package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var (
	ErrUpdateUserProfileCommandIsNotConstructed = errors.New(
		"UpdateUserProfileCommand must be created via NewUpdateUserProfileCommand constructor",
	)
	ErrUserNameIsRequired = errors.New("name is required")
)

// UpdateUserProfileCommand represents a user editing their own profile.
// Only the display name and phone number are owner-editable; email and role
// belong to the auth collaborator.
type UpdateUserProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	phone  kernel.PhoneNumber

	guard guard.ConstructorGuard
}

// NewUpdateUserProfileCommand creates a command to update a user's profile.
// The raw phone input is normalized to the canonical dialing format here so
// handlers and storage only ever see normalized numbers.
func NewUpdateUserProfileCommand(
	userID kernel.UUID,
	name string,
	rawPhone string,
) (UpdateUserProfileCommand, error) {
	profileCommand := UpdateUserProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	phone, err := kernel.NewPhoneNumber(rawPhone)
	if err != nil {
		return UpdateUserProfileCommand{}, err
	}
	profileCommand.phone = phone

	if err := errors.Join(
		profileCommand.setUserID(userID),
		profileCommand.setName(name),
	); err != nil {
		return UpdateUserProfileCommand{}, err
	}

	return profileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateUserProfileCommandIsNotConstructed if validation fails.
func (c UpdateUserProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserProfileCommandIsNotConstructed)
}

// UserID returns the identifier of the user being updated.
func (c UpdateUserProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateUserProfileCommand) Name() string {
	return c.name
}

// Phone returns the new, normalized phone number.
func (c UpdateUserProfileCommand) Phone() kernel.PhoneNumber {
	return c.phone
}

func (c *UpdateUserProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserProfileCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}

	c.name = name
	return nil
}
