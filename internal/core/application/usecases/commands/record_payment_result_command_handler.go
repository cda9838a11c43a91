package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/ports"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// RecordPaymentResultCommandHandler writes a payment attempt's terminal
// outcome onto the parcel. A completed payment also forces the parcel into
// "delivered": this handler is the single point where payment settlement
// couples to operational status.
//
// A notification record is written for the parcel owner after commit.
// Notification failures are logged and swallowed; the recorded payment
// outcome stands regardless.
type RecordPaymentResultCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRecordPaymentResultCommandHandler creates a handler for payment outcomes.
// Requires a ParcelUoWFactory, the notifier port and a logger for notification
// failures.
func NewRecordPaymentResultCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RecordPaymentResultCommandHandler {
	return RecordPaymentResultCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "record_payment_result"),
	}
}

// Handle processes the payment outcome command.
// On a completed payment marks the payment settled and forces the parcel to
// "delivered"; on a failed payment only the payment status changes. The
// parcel update is transactional; the follow-up notification is best effort.
func (h RecordPaymentResultCommandHandler) Handle(ctx context.Context, cmd RecordPaymentResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrParcelNotFound
	}
	if err != nil {
		return err
	}

	if cmd.Result() == parcel.PaymentCompleted {
		aggregate.CompletePayment()
		if err = aggregate.ForceDeliver(); err != nil {
			return err
		}
	} else {
		aggregate.FailPayment()
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate, cmd.Result())

	return nil
}

func (h RecordPaymentResultCommandHandler) notify(
	ctx context.Context,
	aggregate *parcel.Parcel,
	result parcel.PaymentStatus,
) {
	notification := ports.Notification{
		UserID: aggregate.OwnerID(),
		Title:  "Payment failed",
		Message: fmt.Sprintf("Payment of %s for parcel %s failed. Please try again.",
			aggregate.TotalCost().Format(), aggregate.TrackingCode()),
	}
	if result == parcel.PaymentCompleted {
		notification.Title = "Payment received"
		notification.Message = fmt.Sprintf("Payment of %s for parcel %s was received. Thank you!",
			aggregate.TotalCost().Format(), aggregate.TrackingCode())
	}

	if err := h.notifier.Notify(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "Failed to record payment notification",
			"parcel_id", aggregate.ID().String(), "error", err)
	}
}
