package services

import (
	"fmt"
	"math"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

const (
	// BaseFee is the fixed component of every shipping fee.
	BaseFee = 500

	// WeightFeePerKg is the linear per-kilogram component, uncapped.
	WeightFeePerKg = 100

	// NearbyZoneFee applies when the destination county is adjacent to the origin.
	NearbyZoneFee = 200

	// DistantZoneFee applies to any county pair not covered by the adjacency table.
	DistantZoneFee = 500
)

// ServiceTier selects the delivery speed multiplier applied to the whole fee.
type ServiceTier int

const (
	// TierStandard is the default tier with no surcharge.
	TierStandard ServiceTier = iota

	// TierExpress applies a 1.5x multiplier to the whole fee.
	TierExpress
)

// multiplier returns the fee factor for the tier. Unrecognized tiers fall
// back to standard pricing.
func (t ServiceTier) multiplier() float64 {
	if t == TierExpress {
		return 1.5
	}
	return 1.0
}

// CostEstimator is a domain service computing the shipping fee for a parcel
// from its weight and the origin/destination counties.
//
// The fee has three additive components:
//   - a fixed base fee
//   - a linear weight fee (per kilogram, fractional weights allowed, no cap)
//   - a distance fee resolved through a static county adjacency table
//
// The adjacency table is deliberately asymmetric: lookups key on the origin
// county only, and any pair it does not cover prices as distant. The service
// tier multiplier applies to the sum of all three components, rounded to the
// nearest whole unit.
//
// EstimateCost is pure: no I/O, no clock, identical inputs always produce
// identical output.
//
// Example usage:
//
//	estimator := services.NewCostEstimator()
//	origin, _ := kernel.NewZone("Nairobi")
//	dest, _ := kernel.NewZone("Kiambu")
//
//	cost, err := estimator.EstimateCost(2.5, origin, dest, services.TierStandard)
//	if err != nil {
//	    // weight or zones were invalid
//	}
//	cost.Amount() // 950: base 500 + weight 250 + nearby 200
type CostEstimator struct {
	adjacency map[string][]string
}

// NewCostEstimator creates a CostEstimator with the built-in county
// adjacency table.
func NewCostEstimator() CostEstimator {
	return CostEstimator{
		adjacency: countyAdjacency(),
	}
}

// countyAdjacency returns the static origin-keyed adjacency table.
// Counties absent from the table always price as distant, including as
// origins of pairs whose reverse direction would be nearby.
func countyAdjacency() map[string][]string {
	return map[string][]string{
		"nairobi":  {"kiambu", "machakos", "kajiado"},
		"kiambu":   {"nairobi", "murang'a", "nakuru"},
		"mombasa":  {"kilifi", "kwale"},
		"kisumu":   {"siaya", "vihiga", "homa bay"},
		"nakuru":   {"kiambu", "baringo", "narok"},
		"machakos": {"nairobi", "makueni", "kitui"},
	}
}

// EstimateCost computes the shipping fee.
//
// Parameters:
//   - weightKg: parcel weight in kilograms, must be strictly positive
//   - origin: the sender's county
//   - dest: the recipient's county
//   - tier: service tier selecting the fee multiplier
//
// Returns the fee as Money, or a validation error when the weight is not
// positive or either zone is a zero value.
func (e CostEstimator) EstimateCost(
	weightKg float64,
	origin kernel.Zone,
	dest kernel.Zone,
	tier ServiceTier,
) (kernel.Money, error) {
	if weightKg <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	if err := origin.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := dest.Validate(); err != nil {
		return kernel.Money{}, err
	}

	raw := float64(BaseFee) + weightKg*WeightFeePerKg + float64(e.distanceFee(origin, dest))
	total := int(math.Round(raw * tier.multiplier()))

	return kernel.NewMoney(total)
}

// distanceFee resolves the distance component: zero for same-county
// shipments, the nearby fee when the destination appears in the origin's
// adjacency row, the distant fee otherwise.
func (e CostEstimator) distanceFee(origin, dest kernel.Zone) int {
	if origin.IsEqual(dest) {
		return 0
	}

	for _, neighbor := range e.adjacency[origin.Key()] {
		if neighbor == dest.Key() {
			return NearbyZoneFee
		}
	}

	return DistantZoneFee
}
