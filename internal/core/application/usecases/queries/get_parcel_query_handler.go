package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// GetParcelQueryHandler reads one parcel summary from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the lookup. A missing parcel maps to an object-not-found
// error so callers can distinguish it from infrastructure failures.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (*ParcelSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(parcelSummarySelect+`
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries, err := scanParcelSummaries(rows)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
	}

	return &summaries[0], nil
}
