package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler reads all parcels from the database for the
// dispatcher view.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for the dispatcher-wide listing.
// Requires a GORM database connection for query execution.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve every parcel, newest first.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) ([]ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(parcelSummarySelect + `
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelSummaries(rows)
}
