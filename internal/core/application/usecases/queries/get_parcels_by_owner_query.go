// Package queries contains read-only operations over the parcels store.
// Implements the Query side of the CQRS architecture: handlers bypass the
// aggregate layer and read projections straight from the database.
package queries

import (
	"errors"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrGetParcelsByOwnerQueryIsNotConstructed = errors.New(
	"GetParcelsByOwnerQuery must be created via NewGetParcelsByOwnerQuery constructor",
)

// GetParcelsByOwnerQuery retrieves every parcel created by one user,
// regardless of status. The customer dashboard view.
//
// Example:
//
//	query, err := NewGetParcelsByOwnerQuery(ownerID)
//	if err != nil {
//	    return err
//	}
//	parcels, err := NewGetParcelsByOwnerQueryHandler(db).Handle(ctx, query)
type GetParcelsByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsByOwnerQuery creates a query scoped to one owner.
// Validates the owner identifier.
func NewGetParcelsByOwnerQuery(ownerID kernel.UUID) (GetParcelsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetParcelsByOwnerQuery{}, err
	}

	return GetParcelsByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelsByOwnerQueryIsNotConstructed if validation fails.
func (q GetParcelsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owner whose parcels are requested.
func (q GetParcelsByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// ParcelSummary is the read-side projection of one parcel row.
// Shared by the owner-scoped and dispatcher-wide listing queries.
type ParcelSummary struct {
	ID              kernel.UUID
	TrackingCode    string
	OwnerID         kernel.UUID
	SenderName      string
	SenderCounty    string
	RecipientName   string
	RecipientCounty string
	Description     string
	WeightKg        float64
	TotalCost       kernel.Money
	PaymentMethod   parcel.PaymentMethod
	PaymentStatus   parcel.PaymentStatus
	Status          parcel.Status
	CurrentLocation string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
