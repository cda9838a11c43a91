package workingset

import (
	"context"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/queries"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
)

// DispatcherLoader feeds a working set from the dispatcher-wide listing.
type DispatcherLoader struct {
	handler queries.GetAllParcelsQueryHandler
}

// NewDispatcherLoader creates a loader over the all-parcels query handler.
func NewDispatcherLoader(handler queries.GetAllParcelsQueryHandler) DispatcherLoader {
	return DispatcherLoader{handler: handler}
}

// LoadParcels loads every parcel in the system.
func (l DispatcherLoader) LoadParcels(ctx context.Context) ([]queries.ParcelSummary, error) {
	return l.handler.Handle(ctx, queries.NewGetAllParcelsQuery())
}

// OwnerLoader feeds a working set from one customer's parcels.
type OwnerLoader struct {
	handler queries.GetParcelsByOwnerQueryHandler
	ownerID kernel.UUID
}

// NewOwnerLoader creates a loader scoped to one owner's parcels.
func NewOwnerLoader(handler queries.GetParcelsByOwnerQueryHandler, ownerID kernel.UUID) OwnerLoader {
	return OwnerLoader{handler: handler, ownerID: ownerID}
}

// LoadParcels loads the owner's parcels.
func (l OwnerLoader) LoadParcels(ctx context.Context) ([]queries.ParcelSummary, error) {
	query, err := queries.NewGetParcelsByOwnerQuery(l.ownerID)
	if err != nil {
		return nil, err
	}
	return l.handler.Handle(ctx, query)
}
