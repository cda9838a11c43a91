package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves tracking codes against the parcels table.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ErrObjectNotFound when no parcel carries the code.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			sender_name,
			sender_county,
			recipient_name,
			recipient_county,
			status,
			current_location,
			estimated_delivery,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_code = ?
	`, query.TrackingCode().String()).Row()

	var response TrackParcelQueryResponse
	var status int
	var estimatedDelivery sql.NullTime
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&response.TrackingCode,
		&response.SenderName,
		&response.SenderCounty,
		&response.RecipientName,
		&response.RecipientCounty,
		&status,
		&response.CurrentLocation,
		&estimatedDelivery,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.TrackingCode().String())
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	response.Status = parcel.Status(status)
	if estimatedDelivery.Valid {
		response.EstimatedDelivery = &estimatedDelivery.Time
	}
	response.CreatedAt = createdAt
	response.UpdatedAt = updatedAt

	return response, nil
}
