package cmd

import (
	"log/slog"
	"time"

	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/notification"
	"commerce/internal/adapters/out/paymentgw"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/ports"
	"commerce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config             Config
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	paymentGateway     ports.PaymentGateway
	notificationSender ports.NotificationSender
	logger             *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		paymentGateway: paymentgw.NewClient(config.PaymentGatewayURL, config.PaymentGatewayAPIKey),
		notificationSender: notification.NewKafkaNotificationSender(
			notification.NewWriter(config.KafkaHost, config.KafkaNotificationTopic),
		),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(
		f, c.paymentGateway, c.notificationSender, c.config.PaymentCurrency, c.logger,
	)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.paymentGateway, c.logger)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f, c.notificationSender, c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.notificationSender, c.logger)
}

func (c *CompositionRoot) CreateDeactivateUserCommandHandler() commands.DeactivateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateUserProfileCommandHandler() commands.UpdateUserProfileCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestPasswordResetCommandHandler(f, c.notificationSender, c.logger)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateDiscountedTotalQueryHandler() queries.CalculateDiscountedTotalQueryHandler {
	// Read-only math over a single aggregate, so the non-transactional
	// repository accessor is sufficient.
	return queries.NewCalculateDiscountedTotalQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateProcessPaymentCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateShipOrderCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateDeactivateUserCommandHandler(),
		c.CreateUpdateUserProfileCommandHandler(),
		c.CreateRequestPasswordResetCommandHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateCalculateDiscountedTotalQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager(abandonedOrderMaxAge time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateCancelOrderCommandHandler(),
		abandonedOrderMaxAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
