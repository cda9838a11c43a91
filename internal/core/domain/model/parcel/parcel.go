package parcel

import (
	"errors"
	"fmt"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
	// the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel represents a single shipment tracked through pickup, transit and
// delivery. It is the aggregate root coordinating operational status,
// payment settlement and the parties involved.
//
// Parcel maintains these invariants:
//   - Must have valid identifiers (UUID, tracking code, owner)
//   - Sender and recipient must be constructed parties
//   - Weight must be strictly positive
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewParcel or RestoreParcel
//
// A parcel is owned by exactly one user, the sender who created it.
// Dispatchers act on any parcel regardless of owner; ownership checks
// belong to the application layer.
type Parcel struct {
	id           kernel.UUID
	trackingCode TrackingCode
	ownerID      kernel.UUID

	sender    Party
	recipient Party

	description  string
	weightKg     float64
	dimensions   *Dimensions
	instructions string

	cost      kernel.Money
	totalCost kernel.Money

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	status            Status
	currentLocation   string
	estimatedDelivery *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewParcel creates a freshly submitted Parcel with validation.
// The parcel starts in PendingPickup with payment pending, and totalCost
// equal to the computed cost until a dispatcher adjusts it.
func NewParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	ownerID kernel.UUID,
	sender Party,
	recipient Party,
	description string,
	weightKg float64,
	dimensions *Dimensions,
	instructions string,
	paymentMethod PaymentMethod,
	cost kernel.Money,
) (*Parcel, error) {
	now := time.Now().UTC()

	p := &Parcel{
		description:   description,
		dimensions:    dimensions,
		instructions:  instructions,
		cost:          cost,
		totalCost:     cost,
		paymentStatus: PaymentPending,
		status:        PendingPickup,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setOwnerID(ownerID),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setWeight(weightKg),
		p.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence without re-running
// creation-time defaults. Status and payment fields are validated so corrupt
// rows fail loudly instead of producing a half-valid aggregate.
func RestoreParcel(
	id kernel.UUID,
	trackingCode TrackingCode,
	ownerID kernel.UUID,
	sender Party,
	recipient Party,
	description string,
	weightKg float64,
	dimensions *Dimensions,
	instructions string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	cost kernel.Money,
	totalCost kernel.Money,
	currentLocation string,
	estimatedDelivery *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		description:       description,
		dimensions:        dimensions,
		instructions:      instructions,
		cost:              cost,
		totalCost:         totalCost,
		currentLocation:   currentLocation,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingCode(trackingCode),
		p.setOwnerID(ownerID),
		p.setSender(sender),
		p.setRecipient(recipient),
		p.setWeight(weightKg),
		p.setPaymentMethod(paymentMethod),
		p.setPaymentStatus(paymentStatus),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's storage identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingCode returns the customer-facing tracking code.
func (p *Parcel) TrackingCode() TrackingCode { return p.trackingCode }

// OwnerID returns the identifier of the sender who created the parcel.
func (p *Parcel) OwnerID() kernel.UUID { return p.ownerID }

// Sender returns the sending party.
func (p *Parcel) Sender() Party { return p.sender }

// Recipient returns the receiving party.
func (p *Parcel) Recipient() Party { return p.recipient }

// Description returns the free-text contents description.
func (p *Parcel) Description() string { return p.description }

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 { return p.weightKg }

// Dimensions returns the optional measurements, nil when not supplied.
func (p *Parcel) Dimensions() *Dimensions { return p.dimensions }

// Instructions returns the optional special handling instructions.
func (p *Parcel) Instructions() string { return p.instructions }

// Cost returns the computed shipping fee.
func (p *Parcel) Cost() kernel.Money { return p.cost }

// TotalCost returns the charged amount, which may differ from Cost when adjusted.
func (p *Parcel) TotalCost() kernel.Money { return p.totalCost }

// PaymentMethod returns how the sender chose to pay.
func (p *Parcel) PaymentMethod() PaymentMethod { return p.paymentMethod }

// PaymentStatus returns the current settlement state.
func (p *Parcel) PaymentStatus() PaymentStatus { return p.paymentStatus }

// Status returns the current operational status.
func (p *Parcel) Status() Status { return p.status }

// CurrentLocation returns the dispatcher's last free-text location annotation.
func (p *Parcel) CurrentLocation() string { return p.currentLocation }

// EstimatedDelivery returns the estimated delivery date, nil when unset.
func (p *Parcel) EstimatedDelivery() *time.Time { return p.estimatedDelivery }

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last-modified timestamp.
func (p *Parcel) UpdatedAt() time.Time { return p.updatedAt }

// Assign marks the parcel picked up by a dispatcher, moving it to InTransit.
// Only a parcel in PendingPickup can be assigned.
func (p *Parcel) Assign() error {
	newStatus, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// Complete marks the parcel delivered. Only an InTransit parcel completes.
func (p *Parcel) Complete() error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// Cancel withdraws the parcel before pickup. Only a PendingPickup parcel
// can be cancelled; the transition is re-verified here regardless of what
// the caller believes the current status is.
func (p *Parcel) Cancel() error {
	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// UpdateStatus applies a dispatcher-supplied status via the general
// forward-transition rules.
func (p *Parcel) UpdateStatus(target Status) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// UpdateLocation records the dispatcher's free-text location annotation.
func (p *Parcel) UpdateLocation(location string) {
	p.currentLocation = location
	p.touch()
}

// SetEstimatedDelivery records the expected delivery date.
func (p *Parcel) SetEstimatedDelivery(when time.Time) {
	t := when
	p.estimatedDelivery = &t
	p.touch()
}

// AdjustTotalCost overrides the charged amount without touching the computed cost.
func (p *Parcel) AdjustTotalCost(total kernel.Money) {
	p.totalCost = total
	p.touch()
}

// CompletePayment marks the shipping fee as settled. It deliberately does
// not touch the operational status: coupling payment success to forced
// delivery is the application layer's single explicit decision point
// (see ForceDeliver).
func (p *Parcel) CompletePayment() {
	p.paymentStatus = PaymentCompleted
	p.touch()
}

// FailPayment marks the last payment attempt as failed.
// The sender may start a new attempt afterwards.
func (p *Parcel) FailPayment() {
	p.paymentStatus = PaymentFailed
	p.touch()
}

// ForceDeliver moves the parcel to Delivered from any non-final status.
// Used when a confirmed payment implies the hand-over already happened.
// Fails if the parcel was cancelled in the meantime.
func (p *Parcel) ForceDeliver() error {
	if p.status == Delivered {
		return nil
	}

	newStatus, err := p.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.trackingCode = code
	return nil
}

func (p *Parcel) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Parcel) setSender(sender Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	p.sender = sender
	return nil
}

func (p *Parcel) setRecipient(recipient Party) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func (p *Parcel) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *Parcel) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.paymentMethod = method
	return nil
}

func (p *Parcel) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.paymentStatus = status
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
