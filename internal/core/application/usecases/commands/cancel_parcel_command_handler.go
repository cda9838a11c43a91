package commands

import (
	"context"
	"errors"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

var (
	ErrParcelNotFound = errors.New("parcel not found")
	ErrNotParcelOwner = errors.New("parcel belongs to another user")
)

// CancelParcelCommandHandler orchestrates parcel cancellation.
// The parcel's state is re-verified against the repository rather than trusted
// from the client: only the owner can cancel, and only before pickup.
//
// Example:
//
//	handler := NewCancelParcelCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrParcelNotFound):
//	    // unknown parcel id
//	case errors.Is(err, ErrNotParcelOwner):
//	    // requester is not the owner
//	case err != nil:
//	    // state machine rejection or storage failure
//	}
type CancelParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCancelParcelCommandHandler creates a handler for parcel cancellation.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCancelParcelCommandHandler(uowFactory ParcelUoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads the parcel, checks ownership, applies the Cancel transition (allowed
// only from "pending_pickup") and persists the change. On any rejection the
// stored parcel is left untouched.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, cmd CancelParcelCommand) error {
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

	if !aggregate.OwnerID().IsEqual(cmd.RequesterID()) {
		return ErrNotParcelOwner
	}

	if err = aggregate.Cancel(); err != nil {
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
