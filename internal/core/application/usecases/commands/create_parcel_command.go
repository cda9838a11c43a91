package commands

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrParcelWeightIsInvalid = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel for delivery.
// Encapsulates the submitted parties, package details and the chosen payment method.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(
//	    parcelID, ownerID, sender, recipient,
//	    "Laptop", 2.5, nil, "Handle with care",
//	    parcel.PayOnDelivery, services.TierStandard,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, services.NewCostEstimator())
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	ownerID       kernel.UUID
	sender        parcel.Party
	recipient     parcel.Party
	description   string
	weightKg      float64
	dimensions    *parcel.Dimensions
	instructions  string
	paymentMethod parcel.PaymentMethod
	tier          services.ServiceTier

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers, both parties, a positive weight and the payment method.
// Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	ownerID kernel.UUID,
	sender parcel.Party,
	recipient parcel.Party,
	description string,
	weightKg float64,
	dimensions *parcel.Dimensions,
	instructions string,
	paymentMethod parcel.PaymentMethod,
	tier services.ServiceTier,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		description:  description,
		dimensions:   dimensions,
		instructions: instructions,
		tier:         tier,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setOwnerID(ownerID),
		parcelCommand.setSender(sender),
		parcelCommand.setRecipient(recipient),
		parcelCommand.setWeight(weightKg),
		parcelCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OwnerID returns the identifier of the user creating the parcel.
func (c CreateParcelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Sender returns the party handing the parcel over.
func (c CreateParcelCommand) Sender() parcel.Party {
	return c.sender
}

// Recipient returns the party receiving the parcel.
func (c CreateParcelCommand) Recipient() parcel.Party {
	return c.recipient
}

// Description returns the free-text contents description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// Dimensions returns the optional parsed dimensions.
func (c CreateParcelCommand) Dimensions() *parcel.Dimensions {
	return c.dimensions
}

// Instructions returns the optional delivery instructions.
func (c CreateParcelCommand) Instructions() string {
	return c.instructions
}

// PaymentMethod returns the chosen payment method.
func (c CreateParcelCommand) PaymentMethod() parcel.PaymentMethod {
	return c.paymentMethod
}

// Tier returns the service tier used for cost estimation.
func (c CreateParcelCommand) Tier() services.ServiceTier {
	return c.tier
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateParcelCommand) setSender(sender parcel.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient parcel.Party) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return ErrParcelWeightIsInvalid
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setPaymentMethod(method parcel.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
