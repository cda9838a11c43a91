package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents an owner's request to cancel a parcel that
// has not yet been picked up.
//
// Example:
//
//	cmd, err := NewCancelParcelCommand(parcelID, requesterID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCancelParcelCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNotParcelOwner) {
//	    // requester does not own this parcel
//	}
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel.
// Validates both the parcel identifier and the requesting user's identifier.
func NewCancelParcelCommand(parcelID, requesterID kernel.UUID) (CancelParcelCommand, error) {
	cancelCommand := CancelParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setParcelID(parcelID),
		cancelCommand.setRequesterID(requesterID),
	); err != nil {
		return CancelParcelCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelParcelCommandIsNotConstructed if validation fails.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to cancel.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RequesterID returns the identifier of the user requesting cancellation.
func (c CancelParcelCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *CancelParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CancelParcelCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
