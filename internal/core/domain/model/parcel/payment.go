package parcel

import (
	"fmt"
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// PaymentMethod indicates how the sender chose to pay for shipping.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PayOnDelivery defers payment until the parcel reaches the recipient.
	PayOnDelivery

	// PayNow charges the sender through the mobile-money gateway at creation time.
	PayNow
)

// ParsePaymentMethod normalizes the stored spelling ("pay_on_delivery",
// "pay now") into a PaymentMethod. Unrecognized input parses to
// PaymentMethodUnknown.
func ParsePaymentMethod(raw string) PaymentMethod {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)

	switch key {
	case "pay on delivery":
		return PayOnDelivery
	case "pay now":
		return PayNow
	default:
		return PaymentMethodUnknown
	}
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if m != PayOnDelivery && m != PayNow {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	switch m {
	case PayOnDelivery:
		return "pay_on_delivery"
	case PayNow:
		return "pay_now"
	default:
		return "unknown"
	}
}

// PaymentStatus tracks settlement of the shipping fee. It transitions
// independently of the operational Status, except that a confirmed "pay now"
// payment forces delivery (see Parcel.CompletePayment).
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means no settlement has been confirmed yet.
	PaymentPending

	// PaymentCompleted means the gateway confirmed the charge.
	PaymentCompleted

	// PaymentFailed means the last payment attempt failed; a new attempt may follow.
	PaymentFailed
)

// ParsePaymentStatus normalizes the stored spelling into a PaymentStatus.
// Unrecognized input parses to PaymentStatusUnknown.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return PaymentPending
	case "completed":
		return PaymentCompleted
	case "failed":
		return PaymentFailed
	default:
		return PaymentStatusUnknown
	}
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentCompleted && s != PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire representation of the payment status.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "pending"
	case PaymentCompleted:
		return "completed"
	case PaymentFailed:
		return "failed"
	default:
		return "unknown"
	}
}
