package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand represents a dispatcher accepting a parcel for delivery,
// moving it from "pending_pickup" into "in_transit".
//
// Example:
//
//	cmd, err := NewAssignParcelCommand(parcelID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignParcelCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to accept a parcel into transit.
// Validates the parcel identifier.
func NewAssignParcelCommand(parcelID kernel.UUID) (AssignParcelCommand, error) {
	assignCommand := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := assignCommand.setParcelID(parcelID); err != nil {
		return AssignParcelCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignParcelCommandIsNotConstructed if validation fails.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being accepted.
func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
