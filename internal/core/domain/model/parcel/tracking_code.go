package parcel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

const (
	trackingCodePrefix = "TRK"
	trackingCodeMin    = 10000000
	trackingCodeMax    = 99999999
)

var trackingCodePattern = regexp.MustCompile(`^TRK\d{8}$`)

// ErrTrackingCodeIsNotConstructed is returned when validating a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via GenerateTrackingCode or ParseTrackingCode")

// TrackingCode is the customer-facing parcel identifier: "TRK" followed by
// exactly eight decimal digits. Codes are drawn from a uniform random range
// with no uniqueness check at generation time; the persistence layer carries
// a unique index as the backstop (collisions surface as storage errors).
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// GenerateTrackingCode draws a fresh code uniformly from
// [10000000, 99999999] and prefixes it with "TRK".
func GenerateTrackingCode() TrackingCode {
	n := trackingCodeMin + rand.IntN(trackingCodeMax-trackingCodeMin+1)
	return TrackingCode{
		value: fmt.Sprintf("%s%d", trackingCodePrefix, n),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseTrackingCode validates an externally supplied code against the
// TRK+8-digits format.
func ParseTrackingCode(raw string) (TrackingCode, error) {
	if !trackingCodePattern.MatchString(raw) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("%q does not match TRK followed by 8 digits", raw),
		)
	}

	return TrackingCode{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the code, e.g. "TRK48210375".
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate checks that the TrackingCode was built via a constructor.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}
