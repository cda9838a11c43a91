package queries

import (
	"errors"
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery resolves a parcel by its customer-facing tracking code.
// This is the public tracking path: no ownership scoping, and cancelled
// parcels still resolve so their history remains auditable.
//
// Example:
//
//	query, err := NewTrackParcelQuery("TRK12345678")
//	if err != nil {
//	    return err // malformed code
//	}
//	result, err := NewTrackParcelQueryHandler(db).Handle(ctx, query)
type TrackParcelQuery struct {
	trackingCode parcel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query from a raw code string.
// The code must match the TRK format; malformed input is rejected here
// before any database work.
func NewTrackParcelQuery(rawCode string) (TrackParcelQuery, error) {
	code, err := parcel.ParseTrackingCode(rawCode)
	if err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingCode: code,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingCode returns the validated tracking code.
func (q TrackParcelQuery) TrackingCode() parcel.TrackingCode {
	return q.trackingCode
}

// TrackParcelQueryResponse is the public view of one tracked parcel.
// Owner identity and fee breakdown stay internal; the response carries only
// what a recipient holding the code needs to see.
type TrackParcelQueryResponse struct {
	TrackingCode      string
	SenderName        string
	SenderCounty      string
	RecipientName     string
	RecipientCounty   string
	Status            parcel.Status
	CurrentLocation   string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
