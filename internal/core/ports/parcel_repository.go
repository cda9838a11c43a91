package ports

import (
	"context"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// The backing store is the external persistence collaborator; parcels are
// never hard-deleted, so the interface exposes no Delete (cancellation is a
// state change, and "removal from view" is a working-set concern).
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// A tracking-code collision surfaces as the storage layer's constraint error.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its storage identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by its customer-facing code.
	// Resolves parcels in any status, including Cancelled, for audit lookups.
	GetByTrackingCode(ctx context.Context, code parcel.TrackingCode) (*parcel.Parcel, error)

	// GetAllByOwner retrieves every parcel created by the given user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*parcel.Parcel, error)

	// GetAll retrieves every parcel regardless of owner. Dispatcher view.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
