package ports

import (
	"context"
	"encoding/json"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
)

// PaymentInitiator identifies which role started a payment attempt.
type PaymentInitiator string

const (
	// InitiatedByCustomer marks attempts started from the customer dashboard.
	InitiatedByCustomer PaymentInitiator = "customer"

	// InitiatedByDispatcher marks attempts started on the customer's behalf.
	InitiatedByDispatcher PaymentInitiator = "dispatcher"
)

// GatewayStatus is the mobile-money gateway's view of one checkout request.
type GatewayStatus string

const (
	// GatewayStatusPending means the charge is awaiting subscriber confirmation.
	GatewayStatusPending GatewayStatus = "pending"

	// GatewayStatusCompleted means the subscriber confirmed and the charge settled.
	GatewayStatusCompleted GatewayStatus = "completed"

	// GatewayStatusFailed means the charge was declined or expired on the gateway side.
	GatewayStatusFailed GatewayStatus = "failed"
)

// STKPushRequest carries everything the gateway needs to push a payment
// prompt to the subscriber's phone.
type STKPushRequest struct {
	ParcelID          kernel.UUID
	ParcelType        string
	Phone             kernel.PhoneNumber
	Amount            kernel.Money
	InitiatedBy       PaymentInitiator
	InitiatedByUserID *kernel.UUID
}

// PaymentStatusResult is one poll observation. Raw carries the gateway's
// result payload verbatim for the success callback.
type PaymentStatusResult struct {
	Status  GatewayStatus
	Message string
	Raw     json.RawMessage
}

// PaymentGateway is the outbound port to the external mobile-money service.
// Both operations are synchronous HTTP calls from the adapter's perspective;
// settlement itself is asynchronous and observed through repeated
// PaymentStatus polls.
type PaymentGateway interface {
	// InitiateSTKPush asks the gateway to prompt the subscriber.
	// Returns the gateway's checkout request identifier used for polling.
	// A gateway-level rejection or transport failure is an error carrying
	// the gateway's message where one exists.
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (string, error)

	// PaymentStatus queries the resolution of a previously initiated push.
	PaymentStatus(ctx context.Context, checkoutRequestID string) (PaymentStatusResult, error)
}
