package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a dispatcher moving a parcel to a new
// operational status, optionally annotating its current location.
//
// Example:
//
//	cmd, err := NewUpdateParcelStatusCommand(parcelID, parcel.Delivered, "Westlands depot")
//	if err != nil {
//	    return err
//	}
//	handler := NewUpdateParcelStatusCommandHandler(uowFactory, notifier, logger)
//	err = handler.Handle(ctx, cmd)
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	location string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// Validates the parcel identifier and that the target status is a known value.
// The location annotation is optional; an empty string leaves it unchanged.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	location string,
) (UpdateParcelStatusCommand, error) {
	statusCommand := UpdateParcelStatusCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setParcelID(parcelID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being updated.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the target operational status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}

// Location returns the optional location annotation.
func (c UpdateParcelStatusCommand) Location() string {
	return c.location
}

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
