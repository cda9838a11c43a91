package queries

import (
	"errors"

	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery retrieves every parcel in the system, all owners and all
// statuses included. The dispatcher dashboard view; categorization into
// available/active/completed buckets happens downstream in the working set.
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates a query for the dispatcher-wide parcel listing.
// This is a parameterless query.
func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllParcelsQueryIsNotConstructed if validation fails.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}
