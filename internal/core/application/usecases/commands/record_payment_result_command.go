package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var (
	ErrRecordPaymentResultCommandIsNotConstructed = errors.New(
		"RecordPaymentResultCommand must be created via NewRecordPaymentResultCommand constructor",
	)
	ErrPaymentResultIsInvalid = errors.New("payment result must be completed or failed")
)

// RecordPaymentResultCommand represents the settlement outcome of a payment
// attempt being written back onto the parcel. Only terminal gateway outcomes
// are recordable; a still-pending attempt has nothing to persist.
//
// Example:
//
//	cmd, err := NewRecordPaymentResultCommand(parcelID, parcel.PaymentCompleted)
//	if err != nil {
//	    return err
//	}
//	handler := NewRecordPaymentResultCommandHandler(uowFactory, notifier, logger)
//	err = handler.Handle(ctx, cmd)
type RecordPaymentResultCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	result   parcel.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentResultCommand creates a command recording a payment outcome.
// Validates the parcel identifier and that the result is a terminal payment
// status (completed or failed).
func NewRecordPaymentResultCommand(
	parcelID kernel.UUID,
	result parcel.PaymentStatus,
) (RecordPaymentResultCommand, error) {
	paymentCommand := RecordPaymentResultCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setParcelID(parcelID),
		paymentCommand.setResult(result),
	); err != nil {
		return RecordPaymentResultCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentResultCommandIsNotConstructed if validation fails.
func (c RecordPaymentResultCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentResultCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel the payment was for.
func (c RecordPaymentResultCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Result returns the terminal payment outcome to record.
func (c RecordPaymentResultCommand) Result() parcel.PaymentStatus {
	return c.result
}

func (c *RecordPaymentResultCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RecordPaymentResultCommand) setResult(result parcel.PaymentStatus) error {
	if result != parcel.PaymentCompleted && result != parcel.PaymentFailed {
		return ErrPaymentResultIsInvalid
	}

	c.result = result
	return nil
}
