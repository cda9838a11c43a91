package http

import (
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/queries"
	"github.com/visionyy32/Final-sub001/internal/core/application/workingset"
)

// ErrorResponse is the JSON envelope for every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PartyRequest is one side of a shipment in the create-parcel body.
type PartyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	County  string `json:"county"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Carrier string `json:"carrier,omitempty"`
}

// CreateParcelRequest is the body for POST /api/v1/parcels.
type CreateParcelRequest struct {
	Sender        PartyRequest `json:"sender"`
	Recipient     PartyRequest `json:"recipient"`
	Description   string       `json:"description"`
	WeightKg      float64      `json:"weightKg"`
	Dimensions    string       `json:"dimensions,omitempty"`
	Instructions  string       `json:"instructions,omitempty"`
	PaymentMethod string       `json:"paymentMethod"`
	ServiceTier   string       `json:"serviceTier,omitempty"`
}

// CreateParcelResponse returns the created parcel's identity and fee.
type CreateParcelResponse struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode"`
	Status       string `json:"status"`
	TotalCost    int    `json:"totalCost"`
}

// ParcelResponse is one parcel in a listing.
type ParcelResponse struct {
	ID              string    `json:"id"`
	TrackingCode    string    `json:"trackingCode"`
	OwnerID         string    `json:"ownerId"`
	SenderName      string    `json:"senderName"`
	SenderCounty    string    `json:"senderCounty"`
	RecipientName   string    `json:"recipientName"`
	RecipientCounty string    `json:"recipientCounty"`
	Description     string    `json:"description"`
	WeightKg        float64   `json:"weightKg"`
	TotalCost       int       `json:"totalCost"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"`
	Status          string    `json:"status"`
	CurrentLocation string    `json:"currentLocation,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func parcelResponseFromSummary(summary queries.ParcelSummary) ParcelResponse {
	return ParcelResponse{
		ID:              summary.ID.String(),
		TrackingCode:    summary.TrackingCode,
		OwnerID:         summary.OwnerID.String(),
		SenderName:      summary.SenderName,
		SenderCounty:    summary.SenderCounty,
		RecipientName:   summary.RecipientName,
		RecipientCounty: summary.RecipientCounty,
		Description:     summary.Description,
		WeightKg:        summary.WeightKg,
		TotalCost:       summary.TotalCost.Amount(),
		PaymentMethod:   summary.PaymentMethod.String(),
		PaymentStatus:   summary.PaymentStatus.String(),
		Status:          summary.Status.String(),
		CurrentLocation: summary.CurrentLocation,
		CreatedAt:       summary.CreatedAt,
		UpdatedAt:       summary.UpdatedAt,
	}
}

// DashboardResponse is the working-set view for GET /api/v1/dashboard,
// partitioned into the dashboard buckets.
type DashboardResponse struct {
	Available []ParcelResponse `json:"available"`
	Active    []ParcelResponse `json:"active"`
	Completed []ParcelResponse `json:"completed"`
}

func dashboardResponseFromCategorized(c workingset.Categorized) DashboardResponse {
	toResponses := func(summaries []queries.ParcelSummary) []ParcelResponse {
		responses := make([]ParcelResponse, len(summaries))
		for i, summary := range summaries {
			responses[i] = parcelResponseFromSummary(summary)
		}
		return responses
	}

	return DashboardResponse{
		Available: toResponses(c.Available),
		Active:    toResponses(c.Active),
		Completed: toResponses(c.Completed),
	}
}

// TrackParcelResponse is the public view for GET /api/v1/track/{code}.
// No owner identity and no fee breakdown.
type TrackParcelResponse struct {
	TrackingCode      string     `json:"trackingCode"`
	SenderName        string     `json:"senderName"`
	SenderCounty      string     `json:"senderCounty"`
	RecipientName     string     `json:"recipientName"`
	RecipientCounty   string     `json:"recipientCounty"`
	Status            string     `json:"status"`
	CurrentLocation   string     `json:"currentLocation,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// UpdateStatusRequest is the body for POST /api/v1/parcels/{id}/status.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// InitiatePaymentRequest is the body for POST /api/v1/parcels/{id}/pay.
type InitiatePaymentRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// PaymentStateResponse reports the current payment attempt for a parcel.
type PaymentStateResponse struct {
	ParcelID string `json:"parcelId"`
	State    string `json:"state"`
	Message  string `json:"message,omitempty"`
}

// UpdateProfileRequest is the body for PUT /api/v1/users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
