package kernel

import (
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

// ErrZoneIsRequired is returned when an empty delivery zone is supplied.
var ErrZoneIsRequired = errs.NewValueIsRequiredError("zone")

// ErrZoneIsNotConstructed is returned when validating a zero-value Zone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("zone must be created via NewZone constructor")

// Zone is a value object for an administrative delivery region (a county).
// Distance-tier cost lookups key on the canonical form, so "Nairobi",
// "nairobi" and " NAIROBI " all resolve to the same zone.
type Zone struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewZone creates a Zone from a free-text county name.
// The name is trimmed; an empty result is rejected.
func NewZone(name string) (Zone, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Zone{}, ErrZoneIsRequired
	}

	return Zone{
		name:  trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the zone name as supplied (trimmed).
func (z Zone) Name() string {
	return z.name
}

// Key returns the canonical lookup form of the zone name.
func (z Zone) Key() string {
	return strings.ToLower(z.name)
}

// IsEqual compares two zones by canonical key.
func (z Zone) IsEqual(other Zone) bool {
	return z.Key() == other.Key()
}

// Validate checks that the Zone was built via NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}
