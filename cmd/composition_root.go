package cmd

import (
	"context"
	"encoding/json"
	"log/slog"

	"gorm.io/gorm"

	httpin "github.com/visionyy32/Final-sub001/internal/adapters/in/http"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/mpesa"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/postgres"
	"github.com/visionyy32/Final-sub001/internal/adapters/out/postgres/notificationrepo"
	"github.com/visionyy32/Final-sub001/internal/core/application/payments"
	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/commands"
	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/queries"
	"github.com/visionyy32/Final-sub001/internal/core/application/workingset"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"
	"github.com/visionyy32/Final-sub001/internal/core/ports"
	"github.com/visionyy32/Final-sub001/internal/jobs"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), services.NewCostEstimator())
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	return commands.NewCancelParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateAssignParcelCommandHandler() commands.AssignParcelCommandHandler {
	return commands.NewAssignParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.parcelUoWFactory(), c.CreateNotifier(), c.logger)
}

func (c *CompositionRoot) CreateUpdateUserProfileCommandHandler() commands.UpdateUserProfileCommandHandler {
	return commands.NewUpdateUserProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentResultCommandHandler() commands.RecordPaymentResultCommandHandler {
	return commands.NewRecordPaymentResultCommandHandler(c.parcelUoWFactory(), c.CreateNotifier(), c.logger)
}

func (c *CompositionRoot) CreateGetParcelsByOwnerQueryHandler() queries.GetParcelsByOwnerQueryHandler {
	return queries.NewGetParcelsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	return notificationrepo.NewGormNotifier(c.gormDB)
}

func (c *CompositionRoot) CreatePaymentGateway() (ports.PaymentGateway, error) {
	return mpesa.NewClient(c.configs.MpesaGatewayBaseURL)
}

// CreatePaymentFlow wires the payment state machine to the gateway and to the
// command recording settlement. A completed attempt forces the parcel into
// delivered through RecordPaymentResultCommandHandler.
func (c *CompositionRoot) CreatePaymentFlow() (*payments.Flow, error) {
	gateway, err := c.CreatePaymentGateway()
	if err != nil {
		return nil, err
	}

	recordHandler := c.CreateRecordPaymentResultCommandHandler()

	onSuccess := func(ctx context.Context, parcelID kernel.UUID, _ json.RawMessage) {
		cmd, err := commands.NewRecordPaymentResultCommand(parcelID, parcel.PaymentCompleted)
		if err != nil {
			c.logger.ErrorContext(ctx, "Recording payment result failed", "parcel_id", parcelID.String(), "error", err)
			return
		}
		if err := recordHandler.Handle(ctx, cmd); err != nil {
			c.logger.ErrorContext(ctx, "Recording payment result failed", "parcel_id", parcelID.String(), "error", err)
		}
	}

	onClose := func(parcelID kernel.UUID) {
		c.logger.Info("Payment surface closed", "parcel_id", parcelID.String())
	}

	return payments.NewFlow(gateway, onSuccess, onClose, c.logger, payments.Config{
		PollInterval: c.configs.PaymentPollInterval,
		MaxPolls:     c.configs.PaymentMaxPolls,
		CloseDelay:   c.configs.PaymentCloseDelay,
	}), nil
}

// CreateDispatcherWorkingSet builds the working set covering every parcel.
// The scheduled jobs keep it fresh and expire delivered entries.
func (c *CompositionRoot) CreateDispatcherWorkingSet() *workingset.WorkingSet {
	loader := workingset.NewDispatcherLoader(c.CreateGetAllParcelsQueryHandler())
	return workingset.New(loader, workingset.Config{})
}

// CreateCustomerWorkingSets builds the registry of per-customer working
// sets, each fed by the owner-scoped listing. The same scheduled jobs keep
// them fresh alongside the dispatcher set.
func (c *CompositionRoot) CreateCustomerWorkingSets() *workingset.Registry {
	byOwner := c.CreateGetParcelsByOwnerQueryHandler()
	return workingset.NewRegistry(func(ownerID kernel.UUID) workingset.Loader {
		return workingset.NewOwnerLoader(byOwner, ownerID)
	}, workingset.Config{})
}

func (c *CompositionRoot) CreateJobManager(targets []jobs.WorkingSetTarget) *jobs.JobManager {
	return jobs.NewJobManager(targets, c.logger)
}

func (c *CompositionRoot) CreateAuthMiddleware() (*httpin.AuthMiddleware, error) {
	return httpin.NewAuthMiddleware(c.configs.JWTSecret, c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer(
	flow *payments.Flow,
	dispatcherSet *workingset.WorkingSet,
	customerSets *workingset.Registry,
) *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateCancelParcelCommandHandler(),
		c.CreateAssignParcelCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateUpdateUserProfileCommandHandler(),
		c.CreateGetParcelsByOwnerQueryHandler(),
		c.CreateGetAllParcelsQueryHandler(),
		c.CreateGetParcelQueryHandler(),
		c.CreateTrackParcelQueryHandler(),
		flow,
		dispatcherSet,
		customerSets,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
