package queries

import (
	"database/sql"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// parcelSummarySelect is the shared projection for parcel listing queries.
// Column order must match scanParcelSummaries.
const parcelSummarySelect = `
	SELECT
		id,
		tracking_code,
		owner_id,
		sender_name,
		sender_county,
		recipient_name,
		recipient_county,
		description,
		weight_kg,
		total_cost,
		payment_method,
		payment_status,
		status,
		current_location,
		created_at,
		updated_at
	FROM parcels
`

func scanParcelSummaries(rows *sql.Rows) ([]ParcelSummary, error) {
	summaries := make([]ParcelSummary, 0)

	for rows.Next() {
		var summary ParcelSummary
		var id, ownerID uuid.UUID
		var totalCost, paymentMethod, paymentStatus, status int
		var createdAt, updatedAt time.Time

		err := rows.Scan(
			&id,
			&summary.TrackingCode,
			&ownerID,
			&summary.SenderName,
			&summary.SenderCounty,
			&summary.RecipientName,
			&summary.RecipientCounty,
			&summary.Description,
			&summary.WeightKg,
			&totalCost,
			&paymentMethod,
			&paymentStatus,
			&status,
			&summary.CurrentLocation,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = parcelID

		owner, ownerErr := kernel.UUIDFromBytes(ownerID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		summary.OwnerID = owner

		cost, costErr := kernel.NewMoney(totalCost)
		if costErr != nil {
			return nil, costErr
		}
		summary.TotalCost = cost

		summary.PaymentMethod = parcel.PaymentMethod(paymentMethod)
		summary.PaymentStatus = parcel.PaymentStatus(paymentStatus)
		summary.Status = parcel.Status(status)
		summary.CreatedAt = createdAt
		summary.UpdatedAt = updatedAt

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
