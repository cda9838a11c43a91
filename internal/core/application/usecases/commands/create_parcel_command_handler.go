package commands

import (
	"context"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Computes the delivery fee, generates a customer-facing tracking code and
// persists the parcel in "pending_pickup" status awaiting dispatch.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, services.NewCostEstimator())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("parcel creation failed: %w", err)
//	}
//	fmt.Printf("Parcel %s created, fee %s", created.TrackingCode(), created.Cost())
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	estimator  services.CostEstimator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
// Requires a ParcelUoWFactory for transactional persistence and the cost estimator.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	estimator services.CostEstimator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

// Handle processes the parcel creation command.
// Estimates the fee from weight and the sender/recipient counties, generates
// a tracking code and persists the new parcel within a transaction.
// Returns the created aggregate so callers can start a payment attempt on it.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cost, err := h.estimator.EstimateCost(
		cmd.WeightKg(),
		cmd.Sender().County(),
		cmd.Recipient().County(),
		cmd.Tier(),
	)
	if err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		parcel.GenerateTrackingCode(),
		cmd.OwnerID(),
		cmd.Sender(),
		cmd.Recipient(),
		cmd.Description(),
		cmd.WeightKg(),
		cmd.Dimensions(),
		cmd.Instructions(),
		cmd.PaymentMethod(),
		cost,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
