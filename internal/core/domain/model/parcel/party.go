package parcel

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var (
	// ErrPartyIsNotConstructed is returned when validating a zero-value Party.
	ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty constructor")

	// ErrPartyNameIsRequired is returned when the party name is empty.
	ErrPartyNameIsRequired = errs.NewValueIsRequiredError("party name")

	// ErrPartyAddressIsRequired is returned when the party address is empty.
	ErrPartyAddressIsRequired = errs.NewValueIsRequiredError("party address")
)

// Party is a value object describing one side of a shipment: the sender or
// the recipient. County and phone are validated value objects; email and
// carrier are optional free text (carrier is only meaningful on the sender).
type Party struct { //nolint:recvcheck //using for validation
	name    string
	address string
	county  kernel.Zone
	phone   kernel.PhoneNumber
	email   string
	carrier string

	guard guard.ConstructorGuard
}

// NewParty creates a validated Party.
// Name and address must be non-empty; county and phone must be constructed
// value objects. Email and carrier may be empty.
func NewParty(
	name string,
	address string,
	county kernel.Zone,
	phone kernel.PhoneNumber,
	email string,
	carrier string,
) (Party, error) {
	if name == "" {
		return Party{}, ErrPartyNameIsRequired
	}
	if address == "" {
		return Party{}, ErrPartyAddressIsRequired
	}
	if err := errors.Join(county.Validate(), phone.Validate()); err != nil {
		return Party{}, err
	}

	return Party{
		name:    name,
		address: address,
		county:  county,
		phone:   phone,
		email:   email,
		carrier: carrier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Name returns the party's full name.
func (p Party) Name() string { return p.name }

// Address returns the street address.
func (p Party) Address() string { return p.address }

// County returns the party's delivery zone.
func (p Party) County() kernel.Zone { return p.county }

// Phone returns the party's phone number in canonical international format.
func (p Party) Phone() kernel.PhoneNumber { return p.phone }

// Email returns the optional email address, empty when not supplied.
func (p Party) Email() string { return p.email }

// Carrier returns the chosen carrier or commuter service, empty when not supplied.
func (p Party) Carrier() string { return p.carrier }

// Validate checks that the Party was built via NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}
