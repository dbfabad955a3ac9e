//go:build wireinject
// +build wireinject

package app

import (
	"context"

	notificationGateway "meddelivery/internal/gateway/kafka/notification"
	"meddelivery/internal/handlers/tasks/availability_reconcile"
	"meddelivery/internal/pkg/config"
	"meddelivery/internal/pkg/factory/delivery_eta"
	"meddelivery/internal/pkg/factory/payment_handle"
	"meddelivery/internal/pkg/trackingcode"

	deliveryRepo "meddelivery/internal/repository/delivery"
	driverRepo "meddelivery/internal/repository/driver"
	historyRepo "meddelivery/internal/repository/history"
	orderRepo "meddelivery/internal/repository/order"
	requestRepo "meddelivery/internal/repository/request"
	assignmentService "meddelivery/internal/service/assignment"
	driverService "meddelivery/internal/service/driver"
	orderService "meddelivery/internal/service/order"
	requestService "meddelivery/internal/service/request"

	"meddelivery/pkg/logger"
	"meddelivery/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideOrderRepository,
		provideRequestRepository,
		provideDeliveryRepository,
		provideDriverRepository,
		provideHistoryRepository,

		provideNotificationGateway,
		provideETAFactory,
		trackingcode.New,

		provideServiceOrder,
		provideServiceRequest,
		provideServiceAssignment,
		provideServiceDriver,

		provideAvailabilityReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceRequest), new(*requestService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.DeliveryService), new(*assignmentService.Assignment)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(requestService.Repository), new(*requestRepo.Repository)),
		wire.Bind(new(requestService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(requestService.CodeGenerator), new(*trackingcode.Generator)),
		wire.Bind(new(requestService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(assignmentService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignmentService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(assignmentService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(assignmentService.ETAFactory), new(*delivery_eta.ETAFactory)),
		wire.Bind(new(assignmentService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(requestService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(availability_reconcile.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideRequestRepository,
		provideDeliveryRepository,
		provideDriverRepository,
		provideHistoryRepository,

		provideNotificationGateway,
		provideETAFactory,

		provideServiceOrder,
		provideServiceAssignment,
		provideStatusHandlerFactory,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.DeliveryService), new(*assignmentService.Assignment)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.RequestRepository), new(*requestRepo.Repository)),
		wire.Bind(new(assignmentService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(assignmentService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(assignmentService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(assignmentService.ETAFactory), new(*delivery_eta.ETAFactory)),
		wire.Bind(new(assignmentService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(payment_handle.OrderService), new(*orderService.Service)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

