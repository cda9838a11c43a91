package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsByOwnerQueryHandler reads one owner's parcels from the database.
//
// Example:
//
//	handler := NewGetParcelsByOwnerQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d parcels for this account\n", len(parcels))
type GetParcelsByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByOwnerQueryHandler creates a handler for owner-scoped parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsByOwnerQueryHandler(db *gorm.DB) GetParcelsByOwnerQueryHandler {
	return GetParcelsByOwnerQueryHandler{db: db}
}

// Handle executes the query to retrieve the owner's parcels, newest first.
func (h GetParcelsByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByOwnerQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(parcelSummarySelect+`
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelSummaries(rows)
}
