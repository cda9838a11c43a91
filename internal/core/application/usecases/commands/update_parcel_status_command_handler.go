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

// UpdateParcelStatusCommandHandler handles dispatcher-driven status changes.
// Transitions are validated by the domain state machine; illegal moves
// (for example reopening a cancelled parcel) are rejected without mutation.
// The owner gets a notification record after commit, best effort.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
// Requires a ParcelUoWFactory for transactional persistence, the notifier
// port and a logger for notification failures.
func NewUpdateParcelStatusCommandHandler(
	uowFactory ParcelUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status update command.
// Applies the transition through the parcel's state machine, records the
// optional location annotation and persists the change.
func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) error {
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

	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if cmd.Location() != "" {
		aggregate.UpdateLocation(cmd.Location())
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, aggregate)

	return nil
}

func (h UpdateParcelStatusCommandHandler) notify(ctx context.Context, aggregate *parcel.Parcel) {
	message := fmt.Sprintf("Parcel %s is now %s.", aggregate.TrackingCode(), aggregate.Status())
	if location := aggregate.CurrentLocation(); location != "" {
		message = fmt.Sprintf("Parcel %s is now %s (last seen at %s).",
			aggregate.TrackingCode(), aggregate.Status(), location)
	}

	notification := ports.Notification{
		UserID:  aggregate.OwnerID(),
		Title:   "Parcel status updated",
		Message: message,
	}

	if err := h.notifier.Notify(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "Failed to record status notification",
			"parcel_id", aggregate.ID().String(), "error", err)
	}
}
