package cmd

import (
	"log/slog"
	"os"
	"time"

	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/notifier"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/raterepo"
	"shipping/internal/adapters/out/postgres/userrepo"
	"shipping/internal/adapters/out/redis/ratecache"
	"shipping/internal/adapters/out/settlement"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Rates change rarely; a stale rate is served for at most this long.
const rateCacheTTL = 10 * time.Minute

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	rateRepository    ports.RateRepository
	roleChecker       ports.RoleChecker
	notifier          ports.Notifier
	settlementGateway ports.SettlementGateway
	statusPublisher   *kafka.StatusPublisher
	logger            *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	rateRepository := ratecache.NewCachedRateRepository(
		raterepo.NewGormRateRepository(gormDB),
		redisClient,
		rateCacheTTL,
		logger,
	)

	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateRepository:    rateRepository,
		roleChecker:       userrepo.NewGormUserRepository(gormDB),
		notifier:          notifier.NewHTTPNotifier(configs.NotifierBaseURL),
		settlementGateway: settlement.NewMockGateway(),
		statusPublisher:   kafka.NewStatusPublisher(configs.KafkaHost, configs.KafkaStatusTopic),
		logger:            logger,
	}
}

// Close releases connections held by long-lived adapters.
func (c *CompositionRoot) Close() error {
	return c.statusPublisher.Close()
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(
		f,
		c.rateRepository,
		services.NewCityResolver(),
		services.NewPriceCalculator(),
	)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(
		f,
		c.rateRepository,
		services.NewCityResolver(),
		services.NewPriceCalculator(),
	)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.roleChecker)
}

func (c *CompositionRoot) CreateRescheduleShipmentCommandHandler() commands.RescheduleShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendStatusCommandHandler() commands.AppendStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendStatusCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateRetractStatusCommandHandler() commands.RetractStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetractStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(
		f,
		c.settlementGateway,
		c.notifier,
		c.statusPublisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCompleteCODPaymentCommandHandler() commands.CompleteCODPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteCODPaymentCommandHandler(f, c.notifier, c.statusPublisher, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentByIDQueryHandler() queries.GetPaymentByIDQueryHandler {
	return queries.NewGetPaymentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
