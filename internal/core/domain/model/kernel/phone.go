package kernel

import (
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

// CountryCallingCode is the international dialing prefix all subscriber
// numbers are normalized to before they reach the payment gateway.
const CountryCallingCode = "254"

// ErrPhoneNumberIsRequired is returned when an empty phone number is supplied.
var ErrPhoneNumberIsRequired = errs.NewValueIsRequiredError("phone number")

// ErrPhoneNumberIsNotConstructed is returned when validating a zero-value PhoneNumber.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"phone number must be created via NewPhoneNumber constructor")

// PhoneNumber is a value object holding a subscriber number in canonical
// international format. The mobile-money gateway only accepts numbers in
// this form, so normalization happens once at construction and the rest of
// the system never sees a local-format number.
//
// Example:
//
//	phone, err := kernel.NewPhoneNumber("0712 345-678")
//	if err != nil {
//	    // only empty input fails
//	}
//	phone.String() // "254712345678"
type PhoneNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPhoneNumber normalizes raw input into canonical international format.
// The only rejected input is one that normalizes to the empty string.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	canonical := NormalizePhoneNumber(raw)
	if canonical == "" {
		return PhoneNumber{}, ErrPhoneNumberIsRequired
	}

	return PhoneNumber{
		value: canonical,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NormalizePhoneNumber converts any subscriber-number spelling into canonical
// international format. The function is total: every input produces an output
// (possibly empty), and it is idempotent on already-canonical numbers.
//
// Rules, applied after stripping spaces, dashes and a leading plus:
//   - a leading "0" (local format) is replaced with the country calling code
//   - numbers already starting with the country calling code pass through
//   - anything else is prefixed with the country calling code
func NormalizePhoneNumber(raw string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return CountryCallingCode + cleaned[1:]
	case strings.HasPrefix(cleaned, CountryCallingCode):
		return cleaned
	default:
		return CountryCallingCode + cleaned
	}
}

// String returns the canonical international representation.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual compares two phone numbers by canonical value.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

// Validate checks that the PhoneNumber was built via NewPhoneNumber.
func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}
