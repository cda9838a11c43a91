package commands

import (
	"context"
	"errors"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// AssignParcelCommandHandler handles dispatcher acceptance of a parcel.
// Role checks happen at the transport layer; the handler re-verifies the
// parcel's state against the repository before transitioning it.
type AssignParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewAssignParcelCommandHandler creates a handler for parcel acceptance.
// Requires a ParcelUoWFactory for transactional persistence.
func NewAssignParcelCommandHandler(uowFactory ParcelUoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Applies the Assign transition ("pending_pickup" to "in_transit") and persists
// the change. Returns ErrParcelNotFound for an unknown parcel id.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) error {
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

	if err = aggregate.Assign(); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
